package usecases

import (
	"context"
	"strconv"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/group"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor  authz.Actor
	UserID uint
}

// DeleteUserUseCase removes an account. The reserved ghost and admin
// accounts are undeletable; owned tickets survive by being reassigned
// to the ghost user inside the same transaction.
type DeleteUserUseCase struct {
	userRepo   user.Repository
	ticketRepo ticket.TicketRepository
	evaluator  *authz.Evaluator
	enforcer   group.PermissionEnforcer
	txManager  TransactionRunner
	logger     logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	evaluator *authz.Evaluator,
	enforcer group.PermissionEnforcer,
	txManager TransactionRunner,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		evaluator:  evaluator,
		enforcer:   enforcer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return appErrors.NewInternalError("failed to load user")
	}

	if !uc.evaluator.Decide(ctx, cmd.Actor, authz.Ref{Kind: constants.ResourceUser, OwnerID: u.ID()}, constants.ActionDelete) {
		return appErrors.NewForbiddenError("not allowed to delete this user")
	}

	if u.IsReserved() {
		return appErrors.NewForbiddenError("this account cannot be deleted")
	}

	ghost, err := uc.userRepo.GetByUsername(ctx, constants.ReservedUserGhost)
	if err != nil {
		uc.logger.Errorw("failed to load ghost user", "error", err)
		return appErrors.NewInternalError("failed to load ghost user")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.ReassignOwned(txCtx, u.ID(), ghost.ID()); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, u.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to delete user")
	}

	subject := strconv.FormatUint(uint64(u.ID()), 10)
	roles, err := uc.enforcer.GetRolesForUser(subject)
	if err == nil {
		for _, role := range roles {
			if err := uc.enforcer.DeleteRoleForUser(subject, role); err != nil {
				uc.logger.Warnw("failed to drop casbin role for deleted user", "error", err, "role", role)
			}
		}
	}

	uc.logger.Infow("user deleted", "user_id", u.ID())
	return nil
}
