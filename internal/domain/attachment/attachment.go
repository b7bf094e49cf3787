package attachment

import (
	"fmt"
	"strings"
	"time"
)

// Attachment is an uploaded file. It may be linked to a ticket or to a
// comment (at most one of the two) or stay pending until a later create
// operation claims it.
type Attachment struct {
	id         uint
	filename   string
	size       int64
	uploaderID uint
	ticketID   *uint
	commentID  *uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAttachment(filename string, size int64, uploaderID uint) (*Attachment, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if len(filename) > 255 {
		return nil, fmt.Errorf("filename cannot exceed 255 characters")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	now := time.Now()
	return &Attachment{
		filename:   filename,
		size:       size,
		uploaderID: uploaderID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAttachment(id uint, filename string, size int64, uploaderID uint, ticketID, commentID *uint, createdAt, updatedAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		id:         id,
		filename:   filename,
		size:       size,
		uploaderID: uploaderID,
		ticketID:   ticketID,
		commentID:  commentID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// sanitizeFilename strips any path components from a client-supplied name
func sanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	if idx := strings.LastIndexAny(filename, `/\`); idx >= 0 {
		filename = filename[idx+1:]
	}
	return filename
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) TicketID() *uint {
	return a.ticketID
}

func (a *Attachment) CommentID() *uint {
	return a.commentID
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsPending reports whether the file has not been claimed by a ticket
// or comment yet
func (a *Attachment) IsPending() bool {
	return a.ticketID == nil && a.commentID == nil
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// LinkToTicket claims the attachment for a ticket
func (a *Attachment) LinkToTicket(ticketID uint) error {
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	if !a.IsPending() {
		return fmt.Errorf("attachment is already linked")
	}

	a.ticketID = &ticketID
	a.updatedAt = time.Now()
	return nil
}

// LinkToComment claims the attachment for a comment
func (a *Attachment) LinkToComment(commentID uint) error {
	if commentID == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	if !a.IsPending() {
		return fmt.Errorf("attachment is already linked")
	}

	a.commentID = &commentID
	a.updatedAt = time.Now()
	return nil
}
