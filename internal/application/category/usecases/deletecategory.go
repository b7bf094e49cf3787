package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID uint
}

// ticketCounter is the slice of the ticket repository needed to refuse
// deleting a category that tickets still reference.
type ticketCounter interface {
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	ticketRepo   ticketCounter
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo category.Repository, ticketRepo ticketCounter, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	exists, err := uc.categoryRepo.Exists(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to check category", "error", err, "category_id", cmd.CategoryID)
		return appErrors.NewInternalError("failed to check category")
	}
	if !exists {
		return appErrors.NewNotFoundError("category not found")
	}

	inUse, err := uc.ticketRepo.CountByCategory(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to count category tickets", "error", err, "category_id", cmd.CategoryID)
		return appErrors.NewInternalError("failed to check category usage")
	}
	if inUse > 0 {
		return appErrors.NewConflictError("category is still referenced by tickets")
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", cmd.CategoryID)
		return appErrors.NewInternalError("failed to delete category")
	}

	uc.logger.Infow("category deleted", "category_id", cmd.CategoryID)
	return nil
}
