package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/group"
)

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

type mockPermissionRepository struct {
	GetByIDFunc        func(ctx context.Context, id uint) (*group.Permission, error)
	GetByIDsFunc       func(ctx context.Context, ids []uint) ([]*group.Permission, error)
	GetByCodeFunc      func(ctx context.Context, resource, action string) (*group.Permission, error)
	ListFunc           func(ctx context.Context) ([]*group.Permission, error)
	FilterKnownIDsFunc func(ctx context.Context, ids []uint) ([]uint, error)
}

func (m *mockPermissionRepository) GetByID(ctx context.Context, id uint) (*group.Permission, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPermissionRepository) GetByIDs(ctx context.Context, ids []uint) ([]*group.Permission, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockPermissionRepository) GetByCode(ctx context.Context, resource, action string) (*group.Permission, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, resource, action)
	}
	return nil, nil
}

func (m *mockPermissionRepository) List(ctx context.Context) ([]*group.Permission, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPermissionRepository) FilterKnownIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.FilterKnownIDsFunc != nil {
		return m.FilterKnownIDsFunc(ctx, ids)
	}
	return ids, nil
}

type mockEnforcer struct {
	AddPolicyFunc      func(role, resource, action string) error
	RemovePolicyFunc   func(role, resource, action string) error
	AddRoleForUserFunc func(userID, role string) error
	DeleteRoleFunc     func(role string) error
}

func (m *mockEnforcer) Enforce(userID, resource, action string) (bool, error) { return false, nil }

func (m *mockEnforcer) AddPolicy(role, resource, action string) error {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(role, resource, action)
	}
	return nil
}

func (m *mockEnforcer) RemovePolicy(role, resource, action string) error {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(role, resource, action)
	}
	return nil
}

func (m *mockEnforcer) AddRoleForUser(userID, role string) error {
	if m.AddRoleForUserFunc != nil {
		return m.AddRoleForUserFunc(userID, role)
	}
	return nil
}

func (m *mockEnforcer) DeleteRoleForUser(userID, role string) error { return nil }

func (m *mockEnforcer) DeleteRole(role string) error {
	if m.DeleteRoleFunc != nil {
		return m.DeleteRoleFunc(role)
	}
	return nil
}

func (m *mockEnforcer) GetRolesForUser(userID string) ([]string, error)         { return nil, nil }
func (m *mockEnforcer) GetPermissionsForUser(userID string) ([][]string, error) { return nil, nil }
func (m *mockEnforcer) LoadPolicy() error                                       { return nil }

type mockUserIDLister struct {
	ListIDsByGroupFunc func(ctx context.Context, groupID uint) ([]uint, error)
}

func (m *mockUserIDLister) ListIDsByGroup(ctx context.Context, groupID uint) ([]uint, error) {
	if m.ListIDsByGroupFunc != nil {
		return m.ListIDsByGroupFunc(ctx, groupID)
	}
	return nil, nil
}

func buildGroup(t *testing.T, id uint, name string, reserved bool, permissionIDs []uint) *group.Group {
	t.Helper()
	now := time.Now()
	g, err := group.ReconstructGroup(id, name, group.Slugify(name), reserved, permissionIDs, now, now, 1)
	require.NoError(t, err)
	return g
}

func buildPermission(t *testing.T, id uint, resource, action string) *group.Permission {
	t.Helper()
	now := time.Now()
	p, err := group.ReconstructPermission(id, resource, action, "", now, now)
	require.NoError(t, err)
	return p
}
