package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUseCase      createTicketExecutor
	listTicketsUseCase       listTicketsExecutor
	getTicketUseCase         getTicketExecutor
	updateTicketInfoUseCase  updateTicketInfoExecutor
	updateDescriptionUseCase updateDescriptionExecutor
	changeStatusUseCase      changeStatusExecutor
	hideTicketUseCase        hideTicketExecutor
	unhideTicketUseCase      unhideTicketExecutor
	deleteTicketUseCase      deleteTicketExecutor
	addParticipantUseCase    addParticipantExecutor
	addModeratorUseCase      addModeratorExecutor
	addCommentUseCase        addCommentExecutor
	editCommentUseCase       editCommentExecutor
	logger                   logger.Interface
}

func NewTicketHandler(
	createTicketUC createTicketExecutor,
	listTicketsUC listTicketsExecutor,
	getTicketUC getTicketExecutor,
	updateTicketInfoUC updateTicketInfoExecutor,
	updateDescriptionUC updateDescriptionExecutor,
	changeStatusUC changeStatusExecutor,
	hideTicketUC hideTicketExecutor,
	unhideTicketUC unhideTicketExecutor,
	deleteTicketUC deleteTicketExecutor,
	addParticipantUC addParticipantExecutor,
	addModeratorUC addModeratorExecutor,
	addCommentUC addCommentExecutor,
	editCommentUC editCommentExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUseCase:      createTicketUC,
		listTicketsUseCase:       listTicketsUC,
		getTicketUseCase:         getTicketUC,
		updateTicketInfoUseCase:  updateTicketInfoUC,
		updateDescriptionUseCase: updateDescriptionUC,
		changeStatusUseCase:      changeStatusUC,
		hideTicketUseCase:        hideTicketUC,
		unhideTicketUseCase:      unhideTicketUC,
		deleteTicketUseCase:      deleteTicketUC,
		addParticipantUseCase:    addParticipantUC,
		addModeratorUseCase:      addModeratorUC,
		addCommentUseCase:        addCommentUC,
		editCommentUseCase:       editCommentUC,
		logger:                   logger,
	}
}

type CreateTicketRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Location      string `json:"location"`
	CategoryID    uint   `json:"category_id" binding:"required"`
	AttachmentIDs []uint `json:"attachment_ids"`
}

type UpdateTicketInfoRequest struct {
	Title      string `json:"title" binding:"required"`
	Location   string `json:"location"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type MembershipRequest struct {
	Username string `json:"username" binding:"required"`
}

type AddCommentRequest struct {
	Content       string `json:"content" binding:"required"`
	AttachmentIDs []uint `json:"attachment_ids"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateTicketCommand{
		Actor:         actor,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		CategoryID:    req.CategoryID,
		AttachmentIDs: req.AttachmentIDs,
	}

	t, err := h.createTicketUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTicketResponse(t), "ticket created successfully")
}

func (h *TicketHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	page, pageSize := utils.ParsePagination(c, constants.DefaultPageSize, constants.MaxPageSize)

	cmd := usecases.ListTicketsCommand{
		Actor:     actor,
		Scope:     ticket.Scope(c.DefaultQuery("scope", string(ticket.ScopeDashboard))),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if status := c.Query("status"); status != "" {
		cmd.Status = &status
	}
	if rawCategory := c.Query("category_id"); rawCategory != "" {
		if v, err := strconv.ParseUint(rawCategory, 10, 32); err == nil {
			id := uint(v)
			cmd.CategoryID = &id
		}
	}

	result, err := h.listTicketsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewTicketResponseList(result.Tickets), result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getTicketUseCase.Execute(c.Request.Context(), usecases.GetTicketCommand{Actor: actor, TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := TicketDetailResponse{
		TicketResponse:  NewTicketResponse(result.Ticket),
		DescriptionHTML: result.DescriptionHTML,
		Comments:        make([]CommentResponse, 0, len(result.Comments)),
		Attachments:     NewAttachmentResponseList(result.Attachments),
	}
	for _, view := range result.Comments {
		comment := NewCommentResponse(view.Comment)
		comment.ContentHTML = view.ContentHTML
		comment.Attachments = NewAttachmentResponseList(view.Attachments)
		resp.Comments = append(resp.Comments, comment)
	}

	utils.SuccessResponse(c, http.StatusOK, "success", resp)
}

func (h *TicketHandler) UpdateInfo(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateTicketInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateTicketInfoCommand{
		Actor:      actor,
		TicketID:   id,
		Title:      req.Title,
		Location:   req.Location,
		CategoryID: req.CategoryID,
	}

	t, err := h.updateTicketInfoUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", NewTicketResponse(t))
}

func (h *TicketHandler) UpdateDescription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateDescriptionCommand{
		Actor:       actor,
		TicketID:    id,
		Description: req.Description,
	}

	t, err := h.updateDescriptionUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "description updated successfully", NewTicketResponse(t))
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ChangeStatusCommand{
		Actor:    actor,
		TicketID: id,
		Status:   req.Status,
	}

	t, err := h.changeStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "status changed successfully", NewTicketResponse(t))
}

func (h *TicketHandler) Hide(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.hideTicketUseCase.Execute(c.Request.Context(), usecases.HideTicketCommand{Actor: actor, TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket hidden successfully", nil)
}

func (h *TicketHandler) Unhide(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.unhideTicketUseCase.Execute(c.Request.Context(), usecases.UnhideTicketCommand{Actor: actor, TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket restored successfully", nil)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.deleteTicketUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{Actor: actor, TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TicketHandler) AddParticipant(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AddParticipantCommand{
		Actor:    actor,
		TicketID: id,
		Username: req.Username,
	}

	t, err := h.addParticipantUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "participant added successfully", NewTicketResponse(t))
}

func (h *TicketHandler) AddModerator(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AddModeratorCommand{
		Actor:    actor,
		TicketID: id,
		Username: req.Username,
	}

	t, err := h.addModeratorUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "moderator added successfully", NewTicketResponse(t))
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AddCommentCommand{
		Actor:         actor,
		TicketID:      id,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	}

	comment, err := h.addCommentUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewCommentResponse(comment), "comment added successfully")
}

func (h *TicketHandler) EditComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.EditCommentCommand{
		Actor:     actor,
		CommentID: id,
		Content:   req.Content,
	}

	comment, err := h.editCommentUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "comment updated successfully", NewCommentResponse(comment))
}
