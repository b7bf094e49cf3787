package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/group/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// GroupHandler exposes group and permission administration. Routes are
// gated by the permission middleware, so the usecases carry no actor.
type GroupHandler struct {
	listGroupsUseCase      *usecases.ListGroupsUseCase
	getGroupUseCase        *usecases.GetGroupUseCase
	createGroupUseCase     *usecases.CreateGroupUseCase
	updateGroupUseCase     *usecases.UpdateGroupUseCase
	deleteGroupUseCase     *usecases.DeleteGroupUseCase
	listPermissionsUseCase *usecases.ListPermissionsUseCase
	logger                 logger.Interface
}

func NewGroupHandler(
	listGroupsUC *usecases.ListGroupsUseCase,
	getGroupUC *usecases.GetGroupUseCase,
	createGroupUC *usecases.CreateGroupUseCase,
	updateGroupUC *usecases.UpdateGroupUseCase,
	deleteGroupUC *usecases.DeleteGroupUseCase,
	listPermissionsUC *usecases.ListPermissionsUseCase,
	logger logger.Interface,
) *GroupHandler {
	return &GroupHandler{
		listGroupsUseCase:      listGroupsUC,
		getGroupUseCase:        getGroupUC,
		createGroupUseCase:     createGroupUC,
		updateGroupUseCase:     updateGroupUC,
		deleteGroupUseCase:     deleteGroupUC,
		listPermissionsUseCase: listPermissionsUC,
		logger:                 logger,
	}
}

type CreateGroupRequest struct {
	Name          string `json:"name" binding:"required"`
	PermissionIDs []uint `json:"permission_ids"`
}

type UpdateGroupRequest struct {
	Name          *string `json:"name"`
	PermissionIDs []uint  `json:"permission_ids"`
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.listGroupsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewGroupResponseList(groups))
}

func (h *GroupHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "group")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getGroupUseCase.Execute(c.Request.Context(), usecases.GetGroupCommand{GroupID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := NewGroupResponse(result.Group)
	resp.MemberIDs = result.MemberIDs

	utils.SuccessResponse(c, http.StatusOK, "success", resp)
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateGroupCommand{
		Name:          req.Name,
		PermissionIDs: req.PermissionIDs,
	}

	g, err := h.createGroupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewGroupResponse(g), "group created successfully")
}

func (h *GroupHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "group")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateGroupCommand{
		GroupID:       id,
		Name:          req.Name,
		PermissionIDs: req.PermissionIDs,
	}

	g, err := h.updateGroupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "group updated successfully", NewGroupResponse(g))
}

func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "group")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteGroupUseCase.Execute(c.Request.Context(), usecases.DeleteGroupCommand{GroupID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *GroupHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.listPermissionsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewPermissionResponseList(permissions))
}
