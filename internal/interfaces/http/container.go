package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	attachmentUC "helpdesk/internal/application/attachment/usecases"
	"helpdesk/internal/application/authz"
	categoryUC "helpdesk/internal/application/category/usecases"
	groupUC "helpdesk/internal/application/group/usecases"
	settingUC "helpdesk/internal/application/setting/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/settingstore"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/infrastructure/token"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers, and middlewares
// together and exposes the assembled Gin engine. Shutdown releases the
// resources the container opened itself.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	db     *gorm.DB
	redis  *redis.Client

	dispatcher *events.InMemoryDispatcher

	emailManager *email.EmailServiceManager

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimit       gin.HandlerFunc

	authHandler       *handlers.AuthHandler
	userHandler       *handlers.UserHandler
	groupHandler      *handlers.GroupHandler
	categoryHandler   *handlers.CategoryHandler
	ticketHandler     *handlers.TicketHandler
	attachmentHandler *handlers.AttachmentHandler
	settingHandler    *handlers.SettingHandler
}

// sessionTokenAdapter narrows the JWT service to the shape the user
// usecases expect. RefreshAccess rejects access tokens so a stolen
// short-lived token cannot mint new ones.
type sessionTokenAdapter struct {
	jwt *auth.JWTService
}

func (a *sessionTokenAdapter) Generate(userID uint, username string, superuser, staff bool) (*userUC.TokenPair, error) {
	pair, err := a.jwt.Generate(userID, username, superuser, staff)
	if err != nil {
		return nil, err
	}
	return &userUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *sessionTokenAdapter) RefreshAccess(refreshToken string) (string, error) {
	claims, err := a.jwt.Verify(refreshToken)
	if err != nil {
		return "", appErrors.NewInvalidTokenError("invalid or expired refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return "", appErrors.NewInvalidTokenError("token is not a refresh token")
	}
	return a.jwt.RefreshAccessToken(claims)
}

// NewContainer builds the full dependency graph on top of an open
// database handle. The email service manager is returned initialized
// lazily; call InitializeEmail before serving traffic.
func NewContainer(cfg *config.Config, gdb *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		cfg: cfg,
		log: log,
		db:  gdb,
	}

	// Domain events
	dispatcher := events.NewInMemoryDispatcher(100)
	if err := dispatcher.Start(); err != nil {
		return nil, err
	}
	c.dispatcher = dispatcher
	registerUserEventLogging(dispatcher, log)

	// Repositories
	userRepo := repository.NewUserRepository(gdb, dispatcher, log)
	groupRepo := repository.NewGroupRepository(gdb)
	permissionRepo := repository.NewPermissionRepository(gdb)
	categoryRepo := repository.NewCategoryRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	attachmentRepo := repository.NewAttachmentRepository(gdb)

	// Authorization
	enforcer, err := permission.NewEnforcer(gdb, cfg.Authz.ModelPath, log)
	if err != nil {
		return nil, err
	}
	evaluator := authz.NewEvaluator(enforcer, log)

	// Shared infrastructure services
	txManager := db.NewTransactionManager(gdb, log)
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenGenerator := token.NewTokenGenerator()
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	sessionTokens := &sessionTokenAdapter{jwt: jwtService}
	renderer := markdown.NewService()

	settingStore, err := settingstore.NewFileStore(cfg.Settings.Path, log)
	if err != nil {
		return nil, err
	}

	blobStore, err := storage.NewFileStore(cfg.Storage.UploadsDir)
	if err != nil {
		return nil, err
	}

	c.emailManager = email.NewEmailServiceManager(settingStore, cfg.Server.BaseURL, log)
	emailService := email.NewDynamicEmailService(c.emailManager, log)

	// Redis is only used for rate limiting; the server runs without it.
	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := ratelimit.NewRedisRateLimiter(c.redis)
	c.loginRateLimit = middleware.RateLimit(limiter, log, "auth", ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
		RequestsPerDay:    500,
	})

	// Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(evaluator, log)

	activationHours := cfg.Auth.Token.ActivationExpiresHours
	resetMinutes := cfg.Auth.Token.ResetExpiresMinutes

	// User and auth use cases
	registerUC := userUC.NewRegisterUseCase(userRepo, passwordHasher, tokenGenerator, emailService, settingStore, activationHours, log)
	loginUC := userUC.NewLoginUseCase(userRepo, passwordHasher, sessionTokens, log)
	refreshUC := userUC.NewRefreshTokenUseCase(sessionTokens, cfg.Auth.JWT.AccessExpMinutes, log)
	activateUC := userUC.NewActivateUseCase(userRepo, tokenGenerator, log)
	requestResetUC := userUC.NewRequestPasswordResetUseCase(userRepo, tokenGenerator, emailService, resetMinutes, log)
	confirmResetUC := userUC.NewConfirmPasswordResetUseCase(userRepo, passwordHasher, tokenGenerator, emailService, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo, log)
	searchUsersUC := userUC.NewSearchUsersUseCase(userRepo, log)
	createUserUC := userUC.NewCreateUserUseCase(userRepo, groupRepo, passwordHasher, evaluator, enforcer, log)
	updateUserUC := userUC.NewUpdateUserUseCase(userRepo, groupRepo, passwordHasher, tokenGenerator, emailService, evaluator, enforcer, activationHours, log)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, ticketRepo, evaluator, enforcer, txManager, log)

	// Group use cases
	listGroupsUC := groupUC.NewListGroupsUseCase(groupRepo, log)
	getGroupUC := groupUC.NewGetGroupUseCase(groupRepo, userRepo, log)
	createGroupUC := groupUC.NewCreateGroupUseCase(groupRepo, permissionRepo, enforcer, log)
	updateGroupUC := groupUC.NewUpdateGroupUseCase(groupRepo, permissionRepo, userRepo, enforcer, log)
	deleteGroupUC := groupUC.NewDeleteGroupUseCase(groupRepo, enforcer, log)
	listPermissionsUC := groupUC.NewListPermissionsUseCase(permissionRepo, log)

	// Category use cases
	listCategoriesUC := categoryUC.NewListCategoriesUseCase(categoryRepo, log)
	getCategoryUC := categoryUC.NewGetCategoryUseCase(categoryRepo, log)
	createCategoryUC := categoryUC.NewCreateCategoryUseCase(categoryRepo, log)
	updateCategoryUC := categoryUC.NewUpdateCategoryUseCase(categoryRepo, log)
	deleteCategoryUC := categoryUC.NewDeleteCategoryUseCase(categoryRepo, ticketRepo, log)

	// Ticket use cases
	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, categoryRepo, attachmentRepo, txManager, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, evaluator, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, evaluator, renderer, log)
	updateInfoUC := ticketUC.NewUpdateTicketInfoUseCase(ticketRepo, categoryRepo, evaluator, log)
	updateDescriptionUC := ticketUC.NewUpdateDescriptionUseCase(ticketRepo, evaluator, log)
	changeStatusUC := ticketUC.NewChangeStatusUseCase(ticketRepo, evaluator, log)
	hideTicketUC := ticketUC.NewHideTicketUseCase(ticketRepo, evaluator, log)
	unhideTicketUC := ticketUC.NewUnhideTicketUseCase(ticketRepo, evaluator, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, commentRepo, attachmentRepo, blobStore, evaluator, txManager, log)
	addParticipantUC := ticketUC.NewAddParticipantUseCase(ticketRepo, userRepo, evaluator, log)
	addModeratorUC := ticketUC.NewAddModeratorUseCase(ticketRepo, userRepo, evaluator, log)
	addCommentUC := ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, attachmentRepo, evaluator, txManager, log)
	editCommentUC := ticketUC.NewEditCommentUseCase(commentRepo, evaluator, log)

	// Attachment use cases
	uploadUC := attachmentUC.NewUploadUseCase(attachmentRepo, ticketRepo, commentRepo, blobStore, evaluator, log)
	fetchUC := attachmentUC.NewFetchAttachmentUseCase(attachmentRepo, ticketRepo, commentRepo, blobStore, evaluator, log)
	deleteAttachmentUC := attachmentUC.NewDeleteAttachmentUseCase(attachmentRepo, ticketRepo, commentRepo, blobStore, evaluator, log)

	// Setting use cases
	getSettingsUC := settingUC.NewGetSettingsUseCase(settingStore, evaluator, log)
	updateSettingsUC := settingUC.NewUpdateSettingsUseCase(settingStore, c.emailManager, evaluator, log)

	// Handlers
	c.authHandler = handlers.NewAuthHandler(registerUC, loginUC, refreshUC, activateUC, requestResetUC, confirmResetUC, log, cfg.Auth.Cookie, cfg.Auth.JWT)
	c.userHandler = handlers.NewUserHandler(listUsersUC, getUserUC, searchUsersUC, createUserUC, updateUserUC, deleteUserUC, evaluator, log)
	c.groupHandler = handlers.NewGroupHandler(listGroupsUC, getGroupUC, createGroupUC, updateGroupUC, deleteGroupUC, listPermissionsUC, log)
	c.categoryHandler = handlers.NewCategoryHandler(listCategoriesUC, getCategoryUC, createCategoryUC, updateCategoryUC, deleteCategoryUC, log)
	c.ticketHandler = handlers.NewTicketHandler(
		createTicketUC, listTicketsUC, getTicketUC,
		updateInfoUC, updateDescriptionUC, changeStatusUC,
		hideTicketUC, unhideTicketUC, deleteTicketUC,
		addParticipantUC, addModeratorUC,
		addCommentUC, editCommentUC,
		log,
	)
	c.attachmentHandler = handlers.NewAttachmentHandler(uploadUC, fetchUC, deleteAttachmentUC, cfg.Storage, log)
	c.settingHandler = handlers.NewSettingHandler(getSettingsUC, updateSettingsUC, log)

	c.engine = c.buildEngine()

	return c, nil
}

// InitializeEmail loads the SMTP configuration from the settings store.
// An unconfigured mail server is not an error; sends fail until the
// administrator fills in the settings.
func (c *Container) InitializeEmail(ctx context.Context) error {
	return c.emailManager.Initialize(ctx)
}

// Engine returns the assembled Gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources the container opened.
func (c *Container) Shutdown() error {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}
	}
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

// registerUserEventLogging subscribes an audit handler for the user
// lifecycle events published by the user repository.
func registerUserEventLogging(d events.EventSubscriber, log logger.Interface) {
	handler := func(event events.DomainEvent) {
		log.Infow("domain event",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID())
	}
	for _, eventType := range []string{
		user.EventTypeUserRegistered,
		user.EventTypeUserEmailChangeRequested,
		user.EventTypeUserEmailConfirmed,
		user.EventTypeUserPasswordChanged,
	} {
		d.Subscribe(eventType, handler)
	}
}
