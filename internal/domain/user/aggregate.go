package user

import (
	"fmt"
	"sync"
	"time"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id             uint
	username       *vo.Username
	email          *vo.Email
	newEmail       *vo.Email
	name           *vo.PersonName
	passwordHash   string
	active         bool
	emailConfirmed bool
	superuser      bool
	staff          bool
	reserved       bool
	groupIDs       []uint
	createdAt      time.Time
	updatedAt      time.Time
	version        int
	events         []interface{}
	mu             sync.RWMutex

	activationTokenHash    *string
	activationExpiresAt    *time.Time
	passwordResetTokenHash *string
	passwordResetExpiresAt *time.Time
}

// NewUser creates a new user aggregate with initial values.
// The account starts active with an unconfirmed email address.
func NewUser(username *vo.Username, email *vo.Email, name *vo.PersonName, passwordHash string) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	user := &User{
		username:       username,
		email:          email,
		newEmail:       email,
		name:           name,
		passwordHash:   passwordHash,
		active:         true,
		emailConfirmed: false,
		groupIDs:       []uint{},
		createdAt:      now,
		updatedAt:      now,
		version:        1,
		events:         []interface{}{},
	}

	user.recordEvent(NewUserRegisteredEvent(user.id, username.String(), email.String()))

	return user, nil
}

// ReconstructState carries the persisted fields that do not belong to the
// aggregate's creation signature.
type ReconstructState struct {
	NewEmail               *vo.Email
	PasswordHash           string
	Active                 bool
	EmailConfirmed         bool
	Superuser              bool
	Staff                  bool
	Reserved               bool
	GroupIDs               []uint
	ActivationTokenHash    *string
	ActivationExpiresAt    *time.Time
	PasswordResetTokenHash *string
	PasswordResetExpiresAt *time.Time
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, username *vo.Username, email *vo.Email, name *vo.PersonName, state ReconstructState, createdAt, updatedAt time.Time, version int) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	groupIDs := state.GroupIDs
	if groupIDs == nil {
		groupIDs = []uint{}
	}

	return &User{
		id:                     id,
		username:               username,
		email:                  email,
		newEmail:               state.NewEmail,
		name:                   name,
		passwordHash:           state.PasswordHash,
		active:                 state.Active,
		emailConfirmed:         state.EmailConfirmed,
		superuser:              state.Superuser,
		staff:                  state.Staff,
		reserved:               state.Reserved,
		groupIDs:               groupIDs,
		activationTokenHash:    state.ActivationTokenHash,
		activationExpiresAt:    state.ActivationExpiresAt,
		passwordResetTokenHash: state.PasswordResetTokenHash,
		passwordResetExpiresAt: state.PasswordResetExpiresAt,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
		version:                version,
		events:                 []interface{}{},
	}, nil
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// Username returns the user's login name
func (u *User) Username() *vo.Username {
	return u.username
}

// Email returns the user's confirmed email
func (u *User) Email() *vo.Email {
	return u.email
}

// NewEmail returns the pending email awaiting confirmation, if any
func (u *User) NewEmail() *vo.Email {
	return u.newEmail
}

// Name returns the user's name
func (u *User) Name() *vo.PersonName {
	return u.name
}

// PasswordHash returns the stored bcrypt hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive reports whether the account may log in
func (u *User) IsActive() bool {
	return u.active
}

// IsEmailConfirmed reports whether the email address has been verified
func (u *User) IsEmailConfirmed() bool {
	return u.emailConfirmed
}

// IsSuperuser reports whether the account bypasses permission checks
func (u *User) IsSuperuser() bool {
	return u.superuser
}

// IsStaff reports whether the account is flagged as staff
func (u *User) IsStaff() bool {
	return u.staff
}

// IsReserved reports whether the account is a seeded system account
func (u *User) IsReserved() bool {
	return u.reserved
}

// GroupIDs returns the IDs of the groups the user belongs to
func (u *User) GroupIDs() []uint {
	return u.groupIDs
}

// ActivationTokenHash returns the sha256 hash of the pending activation token
func (u *User) ActivationTokenHash() *string {
	return u.activationTokenHash
}

// ActivationExpiresAt returns the activation token expiry
func (u *User) ActivationExpiresAt() *time.Time {
	return u.activationExpiresAt
}

// PasswordResetTokenHash returns the sha256 hash of the pending reset token
func (u *User) PasswordResetTokenHash() *string {
	return u.passwordResetTokenHash
}

// PasswordResetExpiresAt returns the reset token expiry
func (u *User) PasswordResetExpiresAt() *time.Time {
	return u.passwordResetExpiresAt
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Version returns the aggregate version for optimistic locking
func (u *User) Version() int {
	return u.version
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// MarkReserved flags the account as a seeded system account.
func (u *User) MarkReserved() {
	u.reserved = true
	u.touch()
}

// UpdateUsername changes the login name
func (u *User) UpdateUsername(username *vo.Username) error {
	if username == nil {
		return fmt.Errorf("username cannot be nil")
	}
	if u.username.Equals(username) {
		return nil
	}

	u.username = username
	u.touch()
	return nil
}

// UpdateName changes the first/last name pair
func (u *User) UpdateName(name *vo.PersonName) error {
	if name == nil {
		return fmt.Errorf("name cannot be nil")
	}
	if u.name.Equals(name) {
		return nil
	}

	u.name = name
	u.touch()
	return nil
}

// RequestEmailChange stages a new address pending confirmation. The
// confirmed address stays in effect until the activation token is used.
func (u *User) RequestEmailChange(email *vo.Email) error {
	if email == nil {
		return fmt.Errorf("email cannot be nil")
	}
	if u.email.Equals(email) {
		u.newEmail = nil
		return nil
	}

	u.newEmail = email
	u.emailConfirmed = false
	u.touch()

	u.recordEvent(NewUserEmailChangeRequestedEvent(u.id, u.email.String(), email.String()))
	return nil
}

// SetEmailDirect replaces the confirmed email without the verification
// flow. Used by administrative edits.
func (u *User) SetEmailDirect(email *vo.Email) error {
	if email == nil {
		return fmt.Errorf("email cannot be nil")
	}

	u.email = email
	u.newEmail = nil
	u.emailConfirmed = true
	u.touch()
	return nil
}

// ConfirmEmail marks the email as verified and promotes the pending
// address when one is staged.
func (u *User) ConfirmEmail() {
	if u.newEmail != nil {
		u.email = u.newEmail
		u.newEmail = nil
	}
	u.emailConfirmed = true
	u.activationTokenHash = nil
	u.activationExpiresAt = nil
	u.touch()

	u.recordEvent(NewUserEmailConfirmedEvent(u.id, u.email.String()))
}

// SetActivationToken stores the hash and expiry of a fresh activation token
func (u *User) SetActivationToken(tokenHash string, expiresAt time.Time) {
	u.activationTokenHash = &tokenHash
	u.activationExpiresAt = &expiresAt
	u.touch()
}

// SetPasswordResetToken stores the hash and expiry of a fresh reset token
func (u *User) SetPasswordResetToken(tokenHash string, expiresAt time.Time) {
	u.passwordResetTokenHash = &tokenHash
	u.passwordResetExpiresAt = &expiresAt
	u.touch()
}

// ChangePassword replaces the stored hash and clears any pending reset token
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	u.passwordHash = passwordHash
	u.passwordResetTokenHash = nil
	u.passwordResetExpiresAt = nil
	u.touch()

	u.recordEvent(NewUserPasswordChangedEvent(u.id))
	return nil
}

// SetActive toggles whether the account may log in
func (u *User) SetActive(active bool) {
	if u.active == active {
		return
	}
	u.active = active
	u.touch()
}

// ReplaceGroups swaps the full group membership and recomputes the
// derived superuser/staff flags. adminGroupID identifies the seeded
// admin group; membership of it implies both flags.
func (u *User) ReplaceGroups(groupIDs []uint, adminGroupID uint) {
	if groupIDs == nil {
		groupIDs = []uint{}
	}
	u.groupIDs = groupIDs

	isAdmin := false
	for _, id := range groupIDs {
		if id == adminGroupID {
			isAdmin = true
			break
		}
	}
	u.superuser = isAdmin
	u.staff = isAdmin
	u.touch()
}

// CanLogin reports whether authentication may succeed for this account
func (u *User) CanLogin() bool {
	return u.active && u.emailConfirmed
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}

// recordEvent records a domain event
func (u *User) recordEvent(event interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, event)
}

// GetEvents returns and clears recorded domain events
func (u *User) GetEvents() []interface{} {
	u.mu.Lock()
	defer u.mu.Unlock()
	events := u.events
	u.events = []interface{}{}
	return events
}
