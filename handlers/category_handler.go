package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"title-review-api/helper"
	"title-review-api/middleware"
	"title-review-api/models"
	"title-review-api/permissions"
	"title-review-api/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	categories, total, err := h.categoryService.GetList(params, c.Query("search"))
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	h.Helper.SendPaginated(c, total, params.Page, params.Limit, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	action := permissions.FromMethod(c.Request.Method)
	if !permissions.CanManageCatalog(middleware.CurrentUser(c), action) {
		h.Helper.SendForbidden(c)
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	action := permissions.FromMethod(c.Request.Method)
	if !permissions.CanManageCatalog(middleware.CurrentUser(c), action) {
		h.Helper.SendForbidden(c)
		return
	}

	if err := h.categoryService.DeleteBySlug(c.Param("slug")); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
