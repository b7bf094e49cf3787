package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/utils/setutil"
)

type Ticket struct {
	id           uint
	title        string
	description  string
	location     string
	status       vo.Status
	hidden       bool
	ownerID      uint
	categoryID   uint
	participants *setutil.UintSet
	moderators   *setutil.UintSet
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(title, description, location string, ownerID, categoryID uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:        title,
		description:  description,
		location:     location,
		status:       vo.StatusUnassigned,
		ownerID:      ownerID,
		categoryID:   categoryID,
		participants: setutil.NewUintSet(),
		moderators:   setutil.NewUintSet(),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	location string,
	status vo.Status,
	hidden bool,
	ownerID uint,
	categoryID uint,
	participantIDs []uint,
	moderatorIDs []uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:           id,
		title:        title,
		description:  description,
		location:     location,
		status:       status,
		hidden:       hidden,
		ownerID:      ownerID,
		categoryID:   categoryID,
		participants: setutil.NewUintSetOf(participantIDs),
		moderators:   setutil.NewUintSetOf(moderatorIDs),
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) IsHidden() bool {
	return t.hidden
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) ParticipantIDs() []uint {
	return t.participants.ToSlice()
}

func (t *Ticket) ModeratorIDs() []uint {
	return t.moderators.ToSlice()
}

func (t *Ticket) IsParticipant(userID uint) bool {
	return t.participants.Has(userID)
}

func (t *Ticket) IsModerator(userID uint) bool {
	return t.moderators.Has(userID)
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateInfo applies title/location/category changes. Empty title and
// location are treated as "leave unchanged"; a zero categoryID likewise.
func (t *Ticket) UpdateInfo(title, location string, categoryID uint) error {
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	if title != "" {
		t.title = title
	}
	if location != "" {
		t.location = location
	}
	if categoryID != 0 {
		t.categoryID = categoryID
	}
	t.touch()
	return nil
}

// UpdateDescription replaces the ticket body
func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}

	t.description = description
	t.touch()
	return nil
}

// ChangeStatus sets the status. Every valid status is reachable from
// every other; moderation policy lives in the caller.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.touch()
	return nil
}

// Hide removes the ticket from regular listings
func (t *Ticket) Hide() {
	if t.hidden {
		return
	}
	t.hidden = true
	t.touch()
}

// Unhide restores the ticket to regular listings
func (t *Ticket) Unhide() {
	if !t.hidden {
		return
	}
	t.hidden = false
	t.touch()
}

// AddParticipant adds a user to the participant set. The owner is never
// added; re-adding an existing participant is a no-op.
func (t *Ticket) AddParticipant(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if userID == t.ownerID {
		return nil
	}
	if t.participants.Has(userID) {
		return nil
	}

	t.participants.Add(userID)
	t.touch()
	return nil
}

// AddModerator adds a user to the moderator set. The first moderator on
// an unassigned ticket moves it to assigned; later adds leave the
// status alone.
func (t *Ticket) AddModerator(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if t.moderators.Has(userID) {
		return nil
	}

	t.moderators.Add(userID)
	if rule, ok := autoTransitions[autoTransitionModeratorAdded]; ok && t.status == rule.from {
		t.status = rule.to
	}
	t.touch()
	return nil
}

// RemoveParticipant drops a user from the participant set
func (t *Ticket) RemoveParticipant(userID uint) {
	if !t.participants.Has(userID) {
		return
	}
	t.participants.Remove(userID)
	t.touch()
}

// ReassignOwner hands the ticket to a new owner. Used when the previous
// owner's account is deleted.
func (t *Ticket) ReassignOwner(newOwnerID uint) error {
	if newOwnerID == 0 {
		return fmt.Errorf("owner ID cannot be zero")
	}

	t.ownerID = newOwnerID
	// The new owner must not appear in the participant set.
	t.participants.Remove(newOwnerID)
	t.touch()
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}
