package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/attachment/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AttachmentHandler struct {
	uploadUseCase  *usecases.UploadUseCase
	fetchUseCase   *usecases.FetchAttachmentUseCase
	deleteUseCase  *usecases.DeleteAttachmentUseCase
	storageConfig  config.StorageConfig
	logger         logger.Interface
}

func NewAttachmentHandler(
	uploadUC *usecases.UploadUseCase,
	fetchUC *usecases.FetchAttachmentUseCase,
	deleteUC *usecases.DeleteAttachmentUseCase,
	storageConfig config.StorageConfig,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadUseCase: uploadUC,
		fetchUseCase:  fetchUC,
		deleteUseCase: deleteUC,
		storageConfig: storageConfig,
		logger:        logger,
	}
}

// Upload accepts a multipart form with a "file" part and optional
// ticket_id or comment_id fields for an immediate link.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	cmd := usecases.UploadCommand{
		Actor:    actor,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	}

	if raw := c.PostForm("ticket_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket_id")
			return
		}
		id := uint(v)
		cmd.TicketID = &id
	}
	if raw := c.PostForm("comment_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid comment_id")
			return
		}
		id := uint(v)
		cmd.CommentID = &id
	}

	a, err := h.uploadUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewAttachmentResponse(a), "attachment uploaded successfully")
}

// Get serves the attachment bytes. With accel redirect enabled the
// response carries only headers and the front proxy reads the file;
// otherwise the handler streams it directly.
func (h *AttachmentHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.fetchUseCase.Execute(c.Request.Context(), usecases.FetchAttachmentCommand{Actor: actor, AttachmentID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	disposition := fmt.Sprintf("attachment; filename=%q", result.Attachment.Filename())

	if h.storageConfig.AccelRedirect {
		internal := path.Join(h.storageConfig.AccelPrefix, strconv.FormatUint(uint64(result.Attachment.ID()), 10))
		c.Header(constants.HeaderAccelRedirect, internal)
		c.Header(constants.HeaderContentDisposition, disposition)
		c.Status(http.StatusOK)
		return
	}

	reader, err := result.Open(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		constants.HeaderContentDisposition: disposition,
	}
	c.DataFromReader(http.StatusOK, result.Attachment.Size(), "application/octet-stream", reader, extraHeaders)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{Actor: actor, AttachmentID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
