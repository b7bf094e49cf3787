package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/group"
	"helpdesk/internal/domain/setting"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
)

// buildUser reconstructs a persisted user for test scenarios.
func buildUser(t *testing.T, id uint, username, email string, state user.ReconstructState) *user.User {
	t.Helper()
	if state.PasswordHash == "" {
		state.PasswordHash = "stored-hash"
	}
	if state.GroupIDs == nil {
		state.GroupIDs = []uint{}
	}
	un, err := uservo.NewUsername(username)
	require.NoError(t, err)
	em, err := uservo.NewEmail(email)
	require.NoError(t, err)
	name, err := uservo.NewPersonName("Test", "User")
	require.NoError(t, err)
	now := time.Now()
	u, err := user.ReconstructUser(id, un, em, name, state, now, now, 1)
	require.NoError(t, err)
	return u
}

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc         func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	SearchFunc           func(ctx context.Context, query string, limit int) ([]*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ReplaceGroupsFunc    func(ctx context.Context, userID uint, groupIDs []uint) error
	ListIDsByGroupFunc   func(ctx context.Context, groupID uint) ([]uint, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, limit int) ([]*user.User, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ReplaceGroups(ctx context.Context, userID uint, groupIDs []uint) error {
	if m.ReplaceGroupsFunc != nil {
		return m.ReplaceGroupsFunc(ctx, userID, groupIDs)
	}
	return nil
}

func (m *mockUserRepository) ListIDsByGroup(ctx context.Context, groupID uint) ([]uint, error) {
	if m.ListIDsByGroupFunc != nil {
		return m.ListIDsByGroupFunc(ctx, groupID)
	}
	return nil, nil
}

type mockGroupRepository struct {
	CreateFunc       func(ctx context.Context, g *group.Group) error
	GetByIDFunc      func(ctx context.Context, id uint) (*group.Group, error)
	GetByIDsFunc     func(ctx context.Context, ids []uint) ([]*group.Group, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (*group.Group, error)
	UpdateFunc       func(ctx context.Context, g *group.Group) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListFunc         func(ctx context.Context) ([]*group.Group, error)
	ExistsBySlugFunc func(ctx context.Context, slug string) (bool, error)
}

func (m *mockGroupRepository) Create(ctx context.Context, g *group.Group) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	return nil
}

func (m *mockGroupRepository) GetByID(ctx context.Context, id uint) (*group.Group, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGroupRepository) GetByIDs(ctx context.Context, ids []uint) ([]*group.Group, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockGroupRepository) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockGroupRepository) Update(ctx context.Context, g *group.Group) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, g)
	}
	return nil
}

func (m *mockGroupRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockGroupRepository) List(ctx context.Context) ([]*group.Group, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockGroupRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	ReassignOwnedFunc   func(ctx context.Context, fromUserID, toUserID uint) error
	CountByCategoryFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ReassignOwned(ctx context.Context, fromUserID, toUserID uint) error {
	if m.ReassignOwnedFunc != nil {
		return m.ReassignOwnedFunc(ctx, fromUserID, toUserID)
	}
	return nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

type mockEnforcer struct {
	EnforceFunc           func(userID, resource, action string) (bool, error)
	AddRoleForUserFunc    func(userID, role string) error
	DeleteRoleForUserFunc func(userID, role string) error
	GetRolesForUserFunc   func(userID string) ([]string, error)
}

func (m *mockEnforcer) Enforce(userID, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(userID, resource, action)
	}
	return false, nil
}

func (m *mockEnforcer) AddPolicy(role, resource, action string) error    { return nil }
func (m *mockEnforcer) RemovePolicy(role, resource, action string) error { return nil }

func (m *mockEnforcer) AddRoleForUser(userID, role string) error {
	if m.AddRoleForUserFunc != nil {
		return m.AddRoleForUserFunc(userID, role)
	}
	return nil
}

func (m *mockEnforcer) DeleteRoleForUser(userID, role string) error {
	if m.DeleteRoleForUserFunc != nil {
		return m.DeleteRoleForUserFunc(userID, role)
	}
	return nil
}

func (m *mockEnforcer) DeleteRole(role string) error { return nil }

func (m *mockEnforcer) GetRolesForUser(userID string) ([]string, error) {
	if m.GetRolesForUserFunc != nil {
		return m.GetRolesForUserFunc(userID)
	}
	return nil, nil
}

func (m *mockEnforcer) GetPermissionsForUser(userID string) ([][]string, error) { return nil, nil }
func (m *mockEnforcer) LoadPolicy() error                                       { return nil }

type mockEmailService struct {
	SendActivationEmailFunc      func(to, token string) error
	SendEmailConfirmationFunc    func(to, token string) error
	SendPasswordResetEmailFunc   func(to, token string) error
	SendPasswordChangedEmailFunc func(to string) error
}

func (m *mockEmailService) SendActivationEmail(to, token string) error {
	if m.SendActivationEmailFunc != nil {
		return m.SendActivationEmailFunc(to, token)
	}
	return nil
}

func (m *mockEmailService) SendEmailConfirmation(to, token string) error {
	if m.SendEmailConfirmationFunc != nil {
		return m.SendEmailConfirmationFunc(to, token)
	}
	return nil
}

func (m *mockEmailService) SendPasswordResetEmail(to, token string) error {
	if m.SendPasswordResetEmailFunc != nil {
		return m.SendPasswordResetEmailFunc(to, token)
	}
	return nil
}

func (m *mockEmailService) SendPasswordChangedEmail(to string) error {
	if m.SendPasswordChangedEmailFunc != nil {
		return m.SendPasswordChangedEmailFunc(to)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "stored-hash", nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateFunc func() (string, string, error)
	HashFunc     func(plainToken string) string
	VerifyFunc   func(plainToken, hash string) bool
}

func (m *mockTokenGenerator) Generate() (string, string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "plain-token", "token-hash", nil
}

func (m *mockTokenGenerator) Hash(plainToken string) string {
	if m.HashFunc != nil {
		return m.HashFunc(plainToken)
	}
	return "token-hash"
}

func (m *mockTokenGenerator) Verify(plainToken, hash string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(plainToken, hash)
	}
	return plainToken == "plain-token" && hash == "token-hash"
}

type mockSessionTokenService struct {
	GenerateFunc      func(userID uint, username string, superuser, staff bool) (*TokenPair, error)
	RefreshAccessFunc func(refreshToken string) (string, error)
}

func (m *mockSessionTokenService) Generate(userID uint, username string, superuser, staff bool) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, superuser, staff)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockSessionTokenService) RefreshAccess(refreshToken string) (string, error) {
	if m.RefreshAccessFunc != nil {
		return m.RefreshAccessFunc(refreshToken)
	}
	return "new-access", nil
}

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

type mockTxRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
