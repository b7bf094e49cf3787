package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name  string
	Color string
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	c, err := category.NewCategory(cmd.Name, cmd.Color)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create category", "error", err)
		return nil, appErrors.NewInternalError("failed to create category")
	}

	uc.logger.Infow("category created", "category_id", c.ID(), "name", c.Name())
	return c, nil
}
