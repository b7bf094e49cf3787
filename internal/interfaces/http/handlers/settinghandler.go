package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/setting/usecases"
	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SettingHandler struct {
	getSettingsUseCase    *usecases.GetSettingsUseCase
	updateSettingsUseCase *usecases.UpdateSettingsUseCase
	logger                logger.Interface
}

func NewSettingHandler(
	getSettingsUC *usecases.GetSettingsUseCase,
	updateSettingsUC *usecases.UpdateSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUseCase:    getSettingsUC,
		updateSettingsUseCase: updateSettingsUC,
		logger:                logger,
	}
}

func (h *SettingHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	doc, err := h.getSettingsUseCase.Execute(c.Request.Context(), usecases.GetSettingsCommand{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", doc)
}

func (h *SettingHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var doc setting.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&doc); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateSettingsCommand{Actor: actor, Settings: &doc}

	result, err := h.updateSettingsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated successfully", gin.H{
		"settings":         result.Settings,
		"restart_required": result.RestartRequired,
	})
}
