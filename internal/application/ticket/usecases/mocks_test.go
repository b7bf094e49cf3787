package usecases

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

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

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *ticket.Comment) error
	UpdateFunc           func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc          func(ctx context.Context, id uint) (*ticket.Comment, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockAttachmentRepository struct {
	CreateFunc                func(ctx context.Context, a *attachment.Attachment) error
	GetByIDFunc               func(ctx context.Context, id uint) (*attachment.Attachment, error)
	UpdateFunc                func(ctx context.Context, a *attachment.Attachment) error
	DeleteFunc                func(ctx context.Context, id uint) error
	ListByTicketFunc          func(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error)
	ListByCommentFunc         func(ctx context.Context, commentID uint) ([]*attachment.Attachment, error)
	ListPendingByUploaderFunc func(ctx context.Context, uploaderID uint, ids []uint) ([]*attachment.Attachment, error)
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *attachment.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*attachment.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Update(ctx context.Context, a *attachment.Attachment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*attachment.Attachment, error) {
	if m.ListByCommentFunc != nil {
		return m.ListByCommentFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListPendingByUploader(ctx context.Context, uploaderID uint, ids []uint) ([]*attachment.Attachment, error) {
	if m.ListPendingByUploaderFunc != nil {
		return m.ListPendingByUploaderFunc(ctx, uploaderID, ids)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *category.Category) error { return nil }
func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	return nil, nil
}
func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error { return nil }
func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error              { return nil }
func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

type mockUserRepository struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, limit int) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) ReplaceGroups(ctx context.Context, userID uint, groupIDs []uint) error {
	return nil
}

func (m *mockUserRepository) ListIDsByGroup(ctx context.Context, groupID uint) ([]uint, error) {
	return nil, nil
}

type mockEnforcer struct {
	EnforceFunc func(userID, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(userID, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(userID, resource, action)
	}
	return false, nil
}

func (m *mockEnforcer) AddPolicy(role, resource, action string) error           { return nil }
func (m *mockEnforcer) RemovePolicy(role, resource, action string) error        { return nil }
func (m *mockEnforcer) AddRoleForUser(userID, role string) error                { return nil }
func (m *mockEnforcer) DeleteRoleForUser(userID, role string) error             { return nil }
func (m *mockEnforcer) DeleteRole(role string) error                            { return nil }
func (m *mockEnforcer) GetRolesForUser(userID string) ([]string, error)         { return nil, nil }
func (m *mockEnforcer) GetPermissionsForUser(userID string) ([][]string, error) { return nil, nil }
func (m *mockEnforcer) LoadPolicy() error                                       { return nil }

// grantOnly builds an enforcer allowing exactly the given
// "resource:action" codes.
func grantOnly(codes ...string) *mockEnforcer {
	allowed := make(map[string]bool, len(codes))
	for _, code := range codes {
		allowed[code] = true
	}
	return &mockEnforcer{
		EnforceFunc: func(userID, resource, action string) (bool, error) {
			return allowed[resource+":"+action], nil
		},
	}
}

type mockBlobStore struct {
	SaveFunc   func(ctx context.Context, id uint, content io.Reader) (int64, error)
	OpenFunc   func(ctx context.Context, id uint) (io.ReadCloser, error)
	PathFunc   func(id uint) string
	RemoveFunc func(ctx context.Context, id uint) error
}

func (m *mockBlobStore) Save(ctx context.Context, id uint, content io.Reader) (int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, id, content)
	}
	return 0, nil
}

func (m *mockBlobStore) Open(ctx context.Context, id uint) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, id)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *mockBlobStore) Path(id uint) string {
	if m.PathFunc != nil {
		return m.PathFunc(id)
	}
	return ""
}

func (m *mockBlobStore) Remove(ctx context.Context, id uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return nil
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

func buildTicket(t *testing.T, id, ownerID uint, status vo.Status, hidden bool, participantIDs, moderatorIDs []uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, "Broken printer", "The printer on floor 2 is jammed.", "Floor 2",
		status, hidden, ownerID, 1, participantIDs, moderatorIDs, 1, now, now)
	require.NoError(t, err)
	return tk
}

func buildComment(t *testing.T, id, ticketID, authorID, num uint, content string) *ticket.Comment {
	t.Helper()
	now := time.Now()
	c, err := ticket.ReconstructComment(id, ticketID, authorID, num, content, now, now)
	require.NoError(t, err)
	return c
}

func buildAttachment(t *testing.T, id uint, uploaderID uint, ticketID, commentID *uint) *attachment.Attachment {
	t.Helper()
	now := time.Now()
	a, err := attachment.ReconstructAttachment(id, "report.pdf", 2048, uploaderID, ticketID, commentID, now, now)
	require.NoError(t, err)
	return a
}
