package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase     registerExecutor
	loginUseCase        loginExecutor
	refreshTokenUseCase refreshTokenExecutor
	activateUseCase     activateExecutor
	requestResetUseCase requestPasswordResetExecutor
	confirmResetUseCase confirmPasswordResetExecutor
	logger              logger.Interface
	cookieConfig        config.CookieConfig
	jwtConfig           config.JWTConfig
}

func NewAuthHandler(
	registerUC registerExecutor,
	loginUC loginExecutor,
	refreshTokenUC refreshTokenExecutor,
	activateUC activateExecutor,
	requestResetUC requestPasswordResetExecutor,
	confirmResetUC confirmPasswordResetExecutor,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:     registerUC,
		loginUseCase:        loginUC,
		refreshTokenUseCase: refreshTokenUC,
		activateUseCase:     activateUC,
		requestResetUseCase: requestResetUC,
		confirmResetUseCase: confirmResetUC,
		logger:              logger,
		cookieConfig:        cookieConfig,
		jwtConfig:           jwtConfig,
	}
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ActivateRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

type RequestPasswordResetRequest struct {
	Login string `json:"login" binding:"required"`
}

type ConfirmPasswordResetRequest struct {
	UserID          uint   `json:"user_id" binding:"required"`
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterCommand{
		Username:        req.Username,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	newUser, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful, check your email to activate the account", gin.H{
		"user_id":  newUser.ID(),
		"username": newUser.Username().String(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Login:    req.Login,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "login", req.Login, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, accessMaxAge, refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       NewUserResponse(result.User),
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	// Cookie first, request body as fallback for non-browser clients.
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if refreshToken == "" {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	cmd := usecases.RefreshTokenCommand{RefreshToken: refreshToken}

	result, err := h.refreshTokenUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, accessMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "token refreshed successfully", gin.H{
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ActivateCommand{UserID: req.UserID, Token: req.Token}

	if err := h.activateUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account activated successfully", nil)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RequestPasswordResetCommand{Login: req.Login}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the account exists, a password reset link has been sent", nil)
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ConfirmPasswordResetCommand{
		UserID:          req.UserID,
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	if err := h.confirmResetUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset successfully", nil)
}
