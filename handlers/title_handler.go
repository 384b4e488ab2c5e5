package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"title-review-api/helper"
	"title-review-api/middleware"
	"title-review-api/models"
	"title-review-api/permissions"
	"title-review-api/services"
)

type TitleHandler struct {
	titleService services.TitleService
	Helper       *helper.HTTPHelper
}

func NewTitleHandler(titleService services.TitleService, h *helper.HTTPHelper) *TitleHandler {
	return &TitleHandler{titleService: titleService, Helper: h}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + param})
		return 0, false
	}
	return uint(id), true
}

func (h *TitleHandler) canManage(c *gin.Context) bool {
	action := permissions.FromMethod(c.Request.Method)
	if !permissions.CanManageCatalog(middleware.CurrentUser(c), action) {
		h.Helper.SendForbidden(c)
		return false
	}
	return true
}

func (h *TitleHandler) GetTitles(c *gin.Context) {
	var params models.TitleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	titles, total, err := h.titleService.GetList(params)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	h.Helper.SendPaginated(c, total, params.Page, params.Limit, titles)
}

func (h *TitleHandler) GetTitle(c *gin.Context) {
	id, ok := parseID(c, "title_id")
	if !ok {
		return
	}

	title, err := h.titleService.GetByID(id)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) CreateTitle(c *gin.Context) {
	if !h.canManage(c) {
		return
	}

	var req models.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	title, err := h.titleService.Create(req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	if !h.canManage(c) {
		return
	}
	id, ok := parseID(c, "title_id")
	if !ok {
		return
	}

	var req models.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	title, err := h.titleService.Update(id, req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) DeleteTitle(c *gin.Context) {
	if !h.canManage(c) {
		return
	}
	id, ok := parseID(c, "title_id")
	if !ok {
		return
	}

	if err := h.titleService.Delete(id); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
