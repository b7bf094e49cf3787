package usecases

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

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

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) ReassignOwned(ctx context.Context, fromUserID, toUserID uint) error {
	return nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

type mockCommentRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error   { return nil }
func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error { return nil }

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error             { return nil }
func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error { return nil }

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

func buildTicket(t *testing.T, id, ownerID uint, participantIDs, moderatorIDs []uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, "Broken printer", "The printer on floor 2 is jammed.", "Floor 2",
		vo.StatusOpen, false, ownerID, 1, participantIDs, moderatorIDs, 1, now, now)
	require.NoError(t, err)
	return tk
}

func buildComment(t *testing.T, id, ticketID, authorID uint) *ticket.Comment {
	t.Helper()
	now := time.Now()
	c, err := ticket.ReconstructComment(id, ticketID, authorID, 1, "Tried power-cycling it.", now, now)
	require.NoError(t, err)
	return c
}

func buildAttachment(t *testing.T, id, uploaderID uint, ticketID, commentID *uint) *attachment.Attachment {
	t.Helper()
	now := time.Now()
	a, err := attachment.ReconstructAttachment(id, "report.pdf", 2048, uploaderID, ticketID, commentID, now, now)
	require.NoError(t, err)
	return a
}
