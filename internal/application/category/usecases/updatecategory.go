package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID uint
	Name       *string
	Color      *string
}

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*category.Category, error) {
	c, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load category", "error", err, "category_id", cmd.CategoryID)
		return nil, appErrors.NewInternalError("failed to load category")
	}

	if cmd.Name != nil {
		if err := c.Rename(*cmd.Name); err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
	}
	if cmd.Color != nil {
		if err := c.Recolor(*cmd.Color); err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
	}

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update category", "error", err, "category_id", c.ID())
		return nil, appErrors.NewInternalError("failed to update category")
	}

	uc.logger.Infow("category updated", "category_id", c.ID())
	return c, nil
}
