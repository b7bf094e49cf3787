package usecases

import (
	"context"
	"errors"
	"time"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/group"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	Actor     authz.Actor
	UserID    uint
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
	Active    *bool
	GroupIDs  []uint // nil means leave membership unchanged
}

type UpdateUserUseCase struct {
	userRepo           user.Repository
	groupRepo          group.Repository
	passwordHasher     user.PasswordHasher
	tokenGenerator     TokenGenerator
	emailService       EmailService
	evaluator          *authz.Evaluator
	enforcer           group.PermissionEnforcer
	activationExpiresH int
	logger             logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	groupRepo group.Repository,
	hasher user.PasswordHasher,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	evaluator *authz.Evaluator,
	enforcer group.PermissionEnforcer,
	activationExpiresHours int,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:           userRepo,
		groupRepo:          groupRepo,
		passwordHasher:     hasher,
		tokenGenerator:     tokenGenerator,
		emailService:       emailService,
		evaluator:          evaluator,
		enforcer:           enforcer,
		activationExpiresH: activationExpiresHours,
		logger:             logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return nil, appErrors.NewInternalError("failed to load user")
	}

	if !uc.evaluator.Decide(ctx, cmd.Actor, authz.Ref{Kind: constants.ResourceUser, OwnerID: u.ID()}, constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("not allowed to edit this user")
	}

	// The ghost account is never editable, by anyone.
	if u.IsReserved() && u.Username().String() == constants.ReservedUserGhost {
		return nil, appErrors.NewForbiddenError("this account cannot be edited")
	}

	if cmd.Username != nil && *cmd.Username != u.Username().String() {
		username, err := vo.NewUsername(*cmd.Username)
		if err != nil {
			return nil, appErrors.NewValidationError("invalid username", err.Error())
		}
		exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
		if err != nil {
			uc.logger.Errorw("failed to check username existence", "error", err)
			return nil, appErrors.NewInternalError("failed to check username")
		}
		if exists {
			return nil, appErrors.NewConflictError("username already taken")
		}
		if err := u.UpdateUsername(username); err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
	}

	if cmd.FirstName != nil || cmd.LastName != nil {
		first := u.Name().First()
		last := u.Name().Last()
		if cmd.FirstName != nil {
			first = *cmd.FirstName
		}
		if cmd.LastName != nil {
			last = *cmd.LastName
		}
		name, err := vo.NewPersonName(first, last)
		if err != nil {
			return nil, appErrors.NewValidationError("invalid name", err.Error())
		}
		if err := u.UpdateName(name); err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
	}

	if cmd.Email != nil {
		if err := uc.applyEmailChange(ctx, cmd.Actor, u, *cmd.Email); err != nil {
			return nil, err
		}
	}

	if cmd.Password != nil {
		if _, err := vo.NewPassword(*cmd.Password); err != nil {
			if errors.Is(err, vo.ErrPasswordTooShort) {
				return nil, appErrors.NewPasswordTooShortError(err.Error())
			}
			return nil, appErrors.NewValidationError(err.Error())
		}
		passwordHash, err := uc.passwordHasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, appErrors.NewInternalError("failed to process password")
		}
		if err := u.ChangePassword(passwordHash); err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
	}

	if cmd.Active != nil {
		if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceUser, constants.ActionUpdate) {
			return nil, appErrors.NewForbiddenError("not allowed to change active state")
		}
		u.SetActive(*cmd.Active)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return nil, appErrors.NewInternalError("failed to update user")
	}

	if cmd.GroupIDs != nil {
		if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceUser, constants.ActionChangePermission) {
			return nil, appErrors.NewForbiddenError("not allowed to change group membership")
		}
		if err := applyGroupChange(ctx, uc.userRepo, uc.groupRepo, uc.enforcer, u, cmd.GroupIDs, uc.logger); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	return u, nil
}

// applyEmailChange picks the direct or the re-verification path. Admins
// holding user:update set addresses directly; a self-service change
// stages the address and mails a confirmation token.
func (uc *UpdateUserUseCase) applyEmailChange(ctx context.Context, actor authz.Actor, u *user.User, newEmail string) error {
	email, err := vo.NewEmail(newEmail)
	if err != nil {
		return appErrors.NewValidationError("invalid email", err.Error())
	}
	if email.Equals(u.Email()) && u.NewEmail() == nil {
		return nil
	}

	taken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return appErrors.NewInternalError("failed to check email")
	}
	if taken && !email.Equals(u.Email()) {
		return appErrors.NewConflictError("email address is already in use")
	}

	if uc.evaluator.HasPermission(actor, constants.ResourceUser, constants.ActionUpdate) {
		return u.SetEmailDirect(email)
	}

	if err := u.RequestEmailChange(email); err != nil {
		return appErrors.NewValidationError(err.Error())
	}
	if u.NewEmail() == nil {
		// Change back to the confirmed address; nothing to verify.
		return nil
	}

	plainToken, tokenHash, err := uc.tokenGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate confirmation token", "error", err)
		return appErrors.NewInternalError("failed to generate confirmation token")
	}
	u.SetActivationToken(tokenHash, time.Now().UTC().Add(time.Duration(uc.activationExpiresH)*time.Hour))

	if err := uc.emailService.SendEmailConfirmation(email.String(), plainToken); err != nil {
		uc.logger.Warnw("failed to send email confirmation", "error", err, "user_id", u.ID())
	}
	return nil
}
