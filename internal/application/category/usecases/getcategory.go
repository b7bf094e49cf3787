package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetCategoryCommand struct {
	CategoryID uint
}

type GetCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, cmd GetCategoryCommand) (*category.Category, error) {
	c, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load category", "error", err, "category_id", cmd.CategoryID)
		return nil, appErrors.NewInternalError("failed to load category")
	}
	return c, nil
}
