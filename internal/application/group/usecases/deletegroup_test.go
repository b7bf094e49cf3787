package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/group"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestDeleteGroupUseCase_Success(t *testing.T) {
	g := buildGroup(t, 4, "Support Staff", false, []uint{1})
	var deletedID uint
	var droppedRole string

	uc := NewDeleteGroupUseCase(&mockGroupRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*group.Group, error) {
			return g, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}, &mockEnforcer{
		DeleteRoleFunc: func(role string) error {
			droppedRole = role
			return nil
		},
	}, logger.Default())

	err := uc.Execute(context.Background(), DeleteGroupCommand{GroupID: 4})
	require.NoError(t, err)
	assert.Equal(t, uint(4), deletedID)
	assert.Equal(t, "support-staff", droppedRole)
}

func TestDeleteGroupUseCase_ReservedRefused(t *testing.T) {
	for _, name := range []string{"admin", "moderator", "user"} {
		t.Run(name, func(t *testing.T) {
			g := buildGroup(t, 1, name, true, nil)
			var deleted bool
			uc := NewDeleteGroupUseCase(&mockGroupRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*group.Group, error) {
					return g, nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}, &mockEnforcer{}, logger.Default())

			err := uc.Execute(context.Background(), DeleteGroupCommand{GroupID: 1})
			require.Error(t, err)
			assert.True(t, appErrors.IsForbiddenError(err))
			assert.False(t, deleted)
		})
	}
}

func TestDeleteGroupUseCase_NotFound(t *testing.T) {
	uc := NewDeleteGroupUseCase(&mockGroupRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*group.Group, error) {
			return nil, appErrors.NewNotFoundError("group not found")
		},
	}, &mockEnforcer{}, logger.Default())

	err := uc.Execute(context.Background(), DeleteGroupCommand{GroupID: 99})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}
