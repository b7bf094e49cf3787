package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// SearchUsersUseCase backs the live search box: substring match on
// username and name, capped result set.
type SearchUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSearchUsersUseCase(userRepo user.Repository, logger logger.Interface) *SearchUsersUseCase {
	return &SearchUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, query string) ([]*user.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	users, err := uc.userRepo.Search(ctx, query, constants.MaxSearchResults)
	if err != nil {
		uc.logger.Errorw("failed to search users", "error", err, "query", query)
		return nil, appErrors.NewInternalError("failed to search users")
	}
	return users, nil
}
