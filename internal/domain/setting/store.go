package setting

import "context"

// Store persists the settings document.
type Store interface {
	// Load reads the current document, creating the default on first use
	Load(ctx context.Context) (*Document, error)

	// Save atomically replaces the stored document
	Save(ctx context.Context, doc *Document) error

	// UpdateFn runs fn under the store's writer lock with the current
	// document and persists the result, closing the read-modify-write race
	UpdateFn(ctx context.Context, fn func(doc *Document) error) (*Document, error)
}
