package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*category.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, appErrors.NewInternalError("failed to list categories")
	}
	return categories, nil
}
