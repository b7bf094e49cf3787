package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/category/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CategoryHandler struct {
	listCategoriesUseCase *usecases.ListCategoriesUseCase
	getCategoryUseCase    *usecases.GetCategoryUseCase
	createCategoryUseCase *usecases.CreateCategoryUseCase
	updateCategoryUseCase *usecases.UpdateCategoryUseCase
	deleteCategoryUseCase *usecases.DeleteCategoryUseCase
	logger                logger.Interface
}

func NewCategoryHandler(
	listCategoriesUC *usecases.ListCategoriesUseCase,
	getCategoryUC *usecases.GetCategoryUseCase,
	createCategoryUC *usecases.CreateCategoryUseCase,
	updateCategoryUC *usecases.UpdateCategoryUseCase,
	deleteCategoryUC *usecases.DeleteCategoryUseCase,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		listCategoriesUseCase: listCategoriesUC,
		getCategoryUseCase:    getCategoryUC,
		createCategoryUseCase: createCategoryUC,
		updateCategoryUseCase: updateCategoryUC,
		deleteCategoryUseCase: deleteCategoryUC,
		logger:                logger,
	}
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.listCategoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewCategoryResponseList(categories))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	category, err := h.getCategoryUseCase.Execute(c.Request.Context(), usecases.GetCategoryCommand{CategoryID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", NewCategoryResponse(category))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateCategoryCommand{Name: req.Name, Color: req.Color}

	category, err := h.createCategoryUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewCategoryResponse(category), "category created successfully")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateCategoryCommand{
		CategoryID: id,
		Name:       req.Name,
		Color:      req.Color,
	}

	category, err := h.updateCategoryUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "category updated successfully", NewCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCategoryUseCase.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{CategoryID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
