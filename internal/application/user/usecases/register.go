package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

type RegisterUseCase struct {
	userRepo           user.Repository
	passwordHasher     user.PasswordHasher
	tokenGenerator     TokenGenerator
	emailService       EmailService
	settingStore       setting.Store
	activationExpiresH int
	logger             logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	settingStore setting.Store,
	activationExpiresHours int,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:           userRepo,
		passwordHasher:     hasher,
		tokenGenerator:     tokenGenerator,
		emailService:       emailService,
		settingStore:       settingStore,
		activationExpiresH: activationExpiresHours,
		logger:             logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	if cmd.Password != cmd.ConfirmPassword {
		return nil, appErrors.NewConflictError("passwords do not match")
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

	if err := uc.checkWhitelist(ctx, email); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, appErrors.NewInternalError("failed to check username")
	}
	if exists {
		return nil, appErrors.NewConflictError("username already taken")
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, appErrors.NewInternalError("failed to check email")
	}
	if exists {
		return nil, appErrors.NewConflictError("email already registered")
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

	plainToken, tokenHash, err := uc.tokenGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate activation token", "error", err)
		return nil, appErrors.NewInternalError("failed to generate activation token")
	}
	newUser.SetActivationToken(tokenHash, time.Now().UTC().Add(time.Duration(uc.activationExpiresH)*time.Hour))

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, appErrors.NewInternalError("failed to create user")
	}

	if err := uc.emailService.SendActivationEmail(email.String(), plainToken); err != nil {
		uc.logger.Warnw("failed to send activation email", "error", err, "email", email.String())
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", username.String())

	return newUser, nil
}

func (uc *RegisterUseCase) checkWhitelist(ctx context.Context, email *vo.Email) error {
	doc, err := uc.settingStore.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return appErrors.NewInternalError("failed to load settings")
	}

	if !doc.Register.EmailWhitelistEnable {
		return nil
	}

	for _, entry := range doc.Register.EmailWhitelist {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		// An entry matches a full address or a bare domain.
		if entry == email.String() || entry == email.Domain() {
			return nil
		}
	}

	return appErrors.NewForbiddenError("email address is not on the whitelist")
}
