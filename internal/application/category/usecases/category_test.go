package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/category"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockCategoryRepository struct {
	CreateFunc  func(ctx context.Context, c *category.Category) error
	GetByIDFunc func(ctx context.Context, id uint) (*category.Category, error)
	UpdateFunc  func(ctx context.Context, c *category.Category) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context) ([]*category.Category, error)
	ExistsFunc  func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

type mockTicketCounter struct {
	CountByCategoryFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockTicketCounter) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

func buildCategory(t *testing.T, id uint, name, color string) *category.Category {
	t.Helper()
	now := time.Now()
	c, err := category.ReconstructCategory(id, name, color, now, now, 1)
	require.NoError(t, err)
	return c
}

func TestCreateCategoryUseCase(t *testing.T) {
	t.Run("normalizes the color", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&mockCategoryRepository{
			CreateFunc: func(ctx context.Context, c *category.Category) error {
				return c.SetID(2)
			},
		}, logger.Default())

		c, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Hardware", Color: "#1F6FEB"})
		require.NoError(t, err)
		assert.Equal(t, uint(2), c.ID())
		assert.Equal(t, "1f6feb", c.Color())
	})

	t.Run("rejects a malformed color", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&mockCategoryRepository{}, logger.Default())
		_, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Hardware", Color: "bluish"})
		require.Error(t, err)
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&mockCategoryRepository{
			CreateFunc: func(ctx context.Context, c *category.Category) error {
				return appErrors.NewConflictError("category name already exists")
			},
		}, logger.Default())
		_, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Hardware", Color: "1f6feb"})
		require.Error(t, err)
		assert.True(t, appErrors.IsConflictError(err))
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	name := "Software"
	color := "#AA0000"
	c := buildCategory(t, 2, "Hardware", "1f6feb")

	uc := NewUpdateCategoryUseCase(&mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return c, nil
		},
	}, logger.Default())

	res, err := uc.Execute(context.Background(), UpdateCategoryCommand{CategoryID: 2, Name: &name, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Software", res.Name())
	assert.Equal(t, "aa0000", res.Color())
}

func TestDeleteCategoryUseCase(t *testing.T) {
	t.Run("refuses when tickets reference it", func(t *testing.T) {
		uc := NewDeleteCategoryUseCase(&mockCategoryRepository{}, &mockTicketCounter{
			CountByCategoryFunc: func(ctx context.Context, categoryID uint) (int64, error) {
				return 3, nil
			},
		}, logger.Default())

		err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: 2})
		require.Error(t, err)
		assert.True(t, appErrors.IsConflictError(err))
	})

	t.Run("deletes an unused category", func(t *testing.T) {
		var deletedID uint
		uc := NewDeleteCategoryUseCase(&mockCategoryRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}, &mockTicketCounter{}, logger.Default())

		err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: 2})
		require.NoError(t, err)
		assert.Equal(t, uint(2), deletedID)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		uc := NewDeleteCategoryUseCase(&mockCategoryRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, nil
			},
		}, &mockTicketCounter{}, logger.Default())

		err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: 99})
		require.Error(t, err)
		assert.True(t, appErrors.IsNotFoundError(err))
	})
}
