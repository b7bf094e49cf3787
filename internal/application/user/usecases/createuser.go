package usecases

import (
	"context"
	"errors"
	"strconv"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/group"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Actor     authz.Actor
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Active    bool
	GroupIDs  []uint
}

// CreateUserUseCase is the administrative create path: the email is
// pre-confirmed and groups may be assigned directly.
type CreateUserUseCase struct {
	userRepo       user.Repository
	groupRepo      group.Repository
	passwordHasher user.PasswordHasher
	evaluator      *authz.Evaluator
	enforcer       group.PermissionEnforcer
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	groupRepo group.Repository,
	hasher user.PasswordHasher,
	evaluator *authz.Evaluator,
	enforcer group.PermissionEnforcer,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		groupRepo:      groupRepo,
		passwordHasher: hasher,
		evaluator:      evaluator,
		enforcer:       enforcer,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if len(cmd.GroupIDs) > 0 &&
		!uc.evaluator.HasPermission(cmd.Actor, constants.ResourceUser, constants.ActionChangePermission) {
		return nil, appErrors.NewForbiddenError("not allowed to assign groups")
	}

	if _, err := vo.NewPassword(cmd.Password); err != nil {
		if errors.Is(err, vo.ErrPasswordTooShort) {
			return nil, appErrors.NewPasswordTooShortError(err.Error())
		}
		return nil, appErrors.NewValidationError(err.Error())
	}

	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid username", err.Error())
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid email", err.Error())
	}
	name, err := vo.NewPersonName(cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid name", err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, appErrors.NewInternalError("failed to check username")
	}
	if exists {
		return nil, appErrors.NewConflictError("username already taken")
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, appErrors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(username, email, name, passwordHash)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}
	newUser.ConfirmEmail()
	newUser.SetActive(cmd.Active)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, appErrors.NewInternalError("failed to create user")
	}

	if len(cmd.GroupIDs) > 0 {
		if err := applyGroupChange(ctx, uc.userRepo, uc.groupRepo, uc.enforcer, newUser, cmd.GroupIDs, uc.logger); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "username", username.String())
	return newUser, nil
}

// applyGroupChange filters the submitted IDs against existing groups,
// replaces the membership set, recomputes the superuser/staff flags, and
// mirrors the membership into casbin grouping rules.
func applyGroupChange(
	ctx context.Context,
	userRepo user.Repository,
	groupRepo group.Repository,
	enforcer group.PermissionEnforcer,
	u *user.User,
	groupIDs []uint,
	log logger.Interface,
) error {
	groups, err := groupRepo.GetByIDs(ctx, groupIDs)
	if err != nil {
		log.Errorw("failed to load groups", "error", err)
		return appErrors.NewInternalError("failed to load groups")
	}

	knownIDs := make([]uint, 0, len(groups))
	var adminGroupID uint
	for _, g := range groups {
		knownIDs = append(knownIDs, g.ID())
		if g.Slug() == constants.ReservedGroupAdmin {
			adminGroupID = g.ID()
		}
	}
	if adminGroupID == 0 {
		// The admin group may simply not be among the submitted IDs;
		// resolve it so ReplaceGroups can compare against it.
		adminGroup, err := groupRepo.GetBySlug(ctx, constants.ReservedGroupAdmin)
		if err == nil {
			adminGroupID = adminGroup.ID()
		}
	}

	u.ReplaceGroups(knownIDs, adminGroupID)

	if err := userRepo.ReplaceGroups(ctx, u.ID(), knownIDs); err != nil {
		log.Errorw("failed to replace group membership", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to replace group membership")
	}
	if err := userRepo.Update(ctx, u); err != nil {
		log.Errorw("failed to update user flags", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to update user")
	}

	subject := strconv.FormatUint(uint64(u.ID()), 10)
	currentRoles, err := enforcer.GetRolesForUser(subject)
	if err != nil {
		log.Errorw("failed to read casbin roles", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to sync roles")
	}
	for _, role := range currentRoles {
		if err := enforcer.DeleteRoleForUser(subject, role); err != nil {
			log.Errorw("failed to drop casbin role", "error", err, "role", role)
			return appErrors.NewInternalError("failed to sync roles")
		}
	}
	for _, g := range groups {
		if err := enforcer.AddRoleForUser(subject, g.Slug()); err != nil {
			log.Errorw("failed to add casbin role", "error", err, "role", g.Slug())
			return appErrors.NewInternalError("failed to sync roles")
		}
	}

	return nil
}
