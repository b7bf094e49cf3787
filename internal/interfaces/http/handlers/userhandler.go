package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUseCase   *usecases.ListUsersUseCase
	getUserUseCase     *usecases.GetUserUseCase
	searchUsersUseCase *usecases.SearchUsersUseCase
	createUserUseCase  *usecases.CreateUserUseCase
	updateUserUseCase  *usecases.UpdateUserUseCase
	deleteUserUseCase  *usecases.DeleteUserUseCase
	evaluator          *authz.Evaluator
	logger             logger.Interface
}

func NewUserHandler(
	listUsersUC *usecases.ListUsersUseCase,
	getUserUC *usecases.GetUserUseCase,
	searchUsersUC *usecases.SearchUsersUseCase,
	createUserUC *usecases.CreateUserUseCase,
	updateUserUC *usecases.UpdateUserUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUseCase:   listUsersUC,
		getUserUseCase:     getUserUC,
		searchUsersUseCase: searchUsersUC,
		createUserUseCase:  createUserUC,
		updateUserUseCase:  updateUserUC,
		deleteUserUseCase:  deleteUserUC,
		evaluator:          evaluator,
		logger:             logger,
	}
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required"`
	Active    bool   `json:"active"`
	GroupIDs  []uint `json:"group_ids"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	Active    *bool   `json:"active"`
	GroupIDs  []uint  `json:"group_ids"`
}

func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c, constants.DefaultPageSize, constants.MaxPageSize)

	filter := user.ListFilter{
		Page:     page,
		PageSize: pageSize,
		Username: c.Query("username"),
		Email:    c.Query("email"),
		OrderBy:  c.Query("order_by"),
		Order:    c.Query("order"),
	}

	users, total, err := h.listUsersUseCase.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewUserResponseList(users), total, page, pageSize)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ref := authz.Ref{Kind: constants.ResourceUser, OwnerID: id}
	if !h.evaluator.Decide(c.Request.Context(), actor, ref, constants.ActionView) {
		utils.ErrorResponse(c, http.StatusForbidden, "not allowed to view this user")
		return
	}

	u, err := h.getUserUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewUserResponse(u))
}

func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	u, err := h.getUserUseCase.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewUserResponse(u))
}

// Search powers the live participant picker. The result shape is
// deliberately thin and the usecase caps the row count.
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("q")

	users, err := h.searchUsersUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewUserSearchResponseList(users))
}

func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateUserCommand{
		Actor:     actor,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Active:    req.Active,
		GroupIDs:  req.GroupIDs,
	}

	u, err := h.createUserUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewUserResponse(u), "user created successfully")
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateUserCommand{
		Actor:     actor,
		UserID:    id,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Active:    req.Active,
		GroupIDs:  req.GroupIDs,
	}

	u, err := h.updateUserUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated successfully", NewUserResponse(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	cmd := usecases.DeleteUserCommand{Actor: actor, UserID: id}

	if err := h.deleteUserUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
