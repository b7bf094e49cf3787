package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/setting"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockSettingStore struct {
	LoadFunc     func(ctx context.Context) (*setting.Document, error)
	SaveFunc     func(ctx context.Context, doc *setting.Document) error
	UpdateFnFunc func(ctx context.Context, fn func(doc *setting.Document) error) (*setting.Document, error)
}

func (m *mockSettingStore) Load(ctx context.Context) (*setting.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return setting.Default(), nil
}

func (m *mockSettingStore) Save(ctx context.Context, doc *setting.Document) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, doc)
	}
	return nil
}

func (m *mockSettingStore) UpdateFn(ctx context.Context, fn func(doc *setting.Document) error) (*setting.Document, error) {
	if m.UpdateFnFunc != nil {
		return m.UpdateFnFunc(ctx, fn)
	}
	doc := setting.Default()
	if err := fn(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type mockEnforcer struct{}

func (m *mockEnforcer) Enforce(userID, resource, action string) (bool, error)   { return false, nil }
func (m *mockEnforcer) AddPolicy(role, resource, action string) error           { return nil }
func (m *mockEnforcer) RemovePolicy(role, resource, action string) error        { return nil }
func (m *mockEnforcer) AddRoleForUser(userID, role string) error                { return nil }
func (m *mockEnforcer) DeleteRoleForUser(userID, role string) error             { return nil }
func (m *mockEnforcer) DeleteRole(role string) error                            { return nil }
func (m *mockEnforcer) GetRolesForUser(userID string) ([]string, error)         { return nil, nil }
func (m *mockEnforcer) GetPermissionsForUser(userID string) ([][]string, error) { return nil, nil }
func (m *mockEnforcer) LoadPolicy() error                                       { return nil }

type mockEmailReloader struct {
	OnSettingsUpdatedFunc func(ctx context.Context) error
	called                bool
}

func (m *mockEmailReloader) OnSettingsUpdated(ctx context.Context) error {
	m.called = true
	if m.OnSettingsUpdatedFunc != nil {
		return m.OnSettingsUpdatedFunc(ctx)
	}
	return nil
}

func newEvaluator() *authz.Evaluator {
	return authz.NewEvaluator(&mockEnforcer{}, logger.Default())
}

func TestGetSettingsUseCase(t *testing.T) {
	t.Run("superuser gets redacted document", func(t *testing.T) {
		store := &mockSettingStore{
			LoadFunc: func(ctx context.Context) (*setting.Document, error) {
				doc := setting.Default()
				doc.EmailServer.SMTPHost = "smtp.example.com"
				doc.EmailServer.SMTPPassword = "hunter2"
				return doc, nil
			},
		}
		uc := NewGetSettingsUseCase(store, newEvaluator(), logger.Default())

		doc, err := uc.Execute(context.Background(), GetSettingsCommand{Actor: authz.Actor{ID: 1, Superuser: true}})

		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com", doc.EmailServer.SMTPHost)
		assert.Empty(t, doc.EmailServer.SMTPPassword)
	})

	t.Run("non superuser is refused", func(t *testing.T) {
		uc := NewGetSettingsUseCase(&mockSettingStore{}, newEvaluator(), logger.Default())

		_, err := uc.Execute(context.Background(), GetSettingsCommand{Actor: authz.Actor{ID: 2}})

		require.Error(t, err)
		assert.True(t, appErrors.IsForbiddenError(err))
	})
}

func TestUpdateSettingsUseCase(t *testing.T) {
	admin := authz.Actor{ID: 1, Superuser: true}

	t.Run("blank password keeps stored credential", func(t *testing.T) {
		store := &mockSettingStore{
			UpdateFnFunc: func(ctx context.Context, fn func(doc *setting.Document) error) (*setting.Document, error) {
				doc := setting.Default()
				doc.EmailServer.SMTPHost = "smtp.example.com"
				doc.EmailServer.SMTPPassword = "hunter2"
				if err := fn(doc); err != nil {
					return nil, err
				}
				assert.Equal(t, "hunter2", doc.EmailServer.SMTPPassword)
				return doc, nil
			},
		}
		reloader := &mockEmailReloader{}
		uc := NewUpdateSettingsUseCase(store, reloader, newEvaluator(), logger.Default())

		update := setting.Default()
		update.EmailServer.SMTPHost = "smtp.example.com"
		update.General.ContactEmail = "support@example.com"

		res, err := uc.Execute(context.Background(), UpdateSettingsCommand{Actor: admin, Settings: update})

		require.NoError(t, err)
		assert.Equal(t, "support@example.com", res.Settings.General.ContactEmail)
		assert.Empty(t, res.Settings.EmailServer.SMTPPassword)
		assert.False(t, res.RestartRequired)
	})

	t.Run("email change triggers reload", func(t *testing.T) {
		reloader := &mockEmailReloader{}
		uc := NewUpdateSettingsUseCase(&mockSettingStore{}, reloader, newEvaluator(), logger.Default())

		update := setting.Default()
		update.EmailServer.SMTPHost = "smtp.new-host.example.com"

		res, err := uc.Execute(context.Background(), UpdateSettingsCommand{Actor: admin, Settings: update})

		require.NoError(t, err)
		assert.True(t, reloader.called)
		assert.False(t, res.RestartRequired)
	})

	t.Run("failed reload reports restart required", func(t *testing.T) {
		reloader := &mockEmailReloader{
			OnSettingsUpdatedFunc: func(ctx context.Context) error { return assert.AnError },
		}
		uc := NewUpdateSettingsUseCase(&mockSettingStore{}, reloader, newEvaluator(), logger.Default())

		update := setting.Default()
		update.EmailServer.SMTPHost = "smtp.new-host.example.com"

		res, err := uc.Execute(context.Background(), UpdateSettingsCommand{Actor: admin, Settings: update})

		require.NoError(t, err)
		assert.True(t, res.RestartRequired)
	})

	t.Run("untouched email section skips reload", func(t *testing.T) {
		reloader := &mockEmailReloader{}
		uc := NewUpdateSettingsUseCase(&mockSettingStore{}, reloader, newEvaluator(), logger.Default())

		update := setting.Default()
		update.Content.Frontpage = "# Welcome"

		_, err := uc.Execute(context.Background(), UpdateSettingsCommand{Actor: admin, Settings: update})

		require.NoError(t, err)
		assert.False(t, reloader.called)
	})

	t.Run("non superuser is refused", func(t *testing.T) {
		uc := NewUpdateSettingsUseCase(&mockSettingStore{}, &mockEmailReloader{}, newEvaluator(), logger.Default())

		_, err := uc.Execute(context.Background(), UpdateSettingsCommand{Actor: authz.Actor{ID: 2}, Settings: setting.Default()})

		require.Error(t, err)
		assert.True(t, appErrors.IsForbiddenError(err))
	})
}
