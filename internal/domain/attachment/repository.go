package attachment

import (
	"context"
	"io"
)

// Repository defines the interface for attachment metadata operations
type Repository interface {
	// Create creates a new attachment row
	Create(ctx context.Context, attachment *Attachment) error

	// GetByID retrieves an attachment by internal ID
	GetByID(ctx context.Context, id uint) (*Attachment, error)

	// Update updates an existing attachment (link changes)
	Update(ctx context.Context, attachment *Attachment) error

	// Delete permanently deletes an attachment row
	Delete(ctx context.Context, id uint) error

	// ListByTicket retrieves all attachments linked to a ticket
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)

	// ListByComment retrieves all attachments linked to a comment
	ListByComment(ctx context.Context, commentID uint) ([]*Attachment, error)

	// ListPendingByUploader retrieves the uploader's unclaimed attachments
	ListPendingByUploader(ctx context.Context, uploaderID uint, ids []uint) ([]*Attachment, error)
}

// BlobStore persists attachment bytes keyed by attachment ID.
type BlobStore interface {
	// Save writes the content under the attachment's ID
	Save(ctx context.Context, id uint, content io.Reader) (int64, error)

	// Open returns a reader over the stored content
	Open(ctx context.Context, id uint) (io.ReadCloser, error)

	// Path returns the filesystem location of the stored content,
	// relative to the uploads root, for internal-redirect serving
	Path(id uint) string

	// Remove deletes the stored content
	Remove(ctx context.Context, id uint) error
}
