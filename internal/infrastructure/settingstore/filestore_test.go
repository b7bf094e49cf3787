package settingstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/logger"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	store, err := NewFileStore(path, logger.Default())
	require.NoError(t, err)
	return store, path
}

func TestNewFileStore_WritesDefaultsOnFirstRun(t *testing.T) {
	store, path := newTestStore(t)

	_, err := os.Stat(path)
	require.NoError(t, err)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 587, doc.EmailServer.SMTPPort)
	assert.True(t, doc.General.AllowLocation)
	assert.NotNil(t, doc.Register.EmailWhitelist)
}

func TestFileStore_SaveAndReload(t *testing.T) {
	store, path := newTestStore(t)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)

	doc.EmailServer.SMTPHost = "smtp.example.com"
	doc.EmailServer.SMTPPassword = "secret"
	require.NoError(t, store.Save(context.Background(), doc))

	reloaded, err := NewFileStore(path, logger.Default())
	require.NoError(t, err)

	got, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", got.EmailServer.SMTPHost)
	assert.Equal(t, "secret", got.EmailServer.SMTPPassword)
}

func TestFileStore_UpdateFn(t *testing.T) {
	store, _ := newTestStore(t)

	updated, err := store.UpdateFn(context.Background(), func(doc *setting.Document) error {
		doc.General.ContactEmail = "help@example.com"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "help@example.com", updated.General.ContactEmail)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "help@example.com", got.General.ContactEmail)
}

func TestFileStore_UpdateFnErrorLeavesDocumentUntouched(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.UpdateFn(context.Background(), func(doc *setting.Document) error {
		doc.General.ContactEmail = "discarded@example.com"
		return assert.AnError
	})
	require.Error(t, err)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.General.ContactEmail)
}

func TestFileStore_LoadReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	doc.General.ContactEmail = "mutated@example.com"

	fresh, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fresh.General.ContactEmail)
}
