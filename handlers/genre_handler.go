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

type GenreHandler struct {
	genreService services.GenreService
	Helper       *helper.HTTPHelper
}

func NewGenreHandler(genreService services.GenreService, h *helper.HTTPHelper) *GenreHandler {
	return &GenreHandler{genreService: genreService, Helper: h}
}

func (h *GenreHandler) GetGenres(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	genres, total, err := h.genreService.GetList(params, c.Query("search"))
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	h.Helper.SendPaginated(c, total, params.Page, params.Limit, genres)
}

func (h *GenreHandler) CreateGenre(c *gin.Context) {
	action := permissions.FromMethod(c.Request.Method)
	if !permissions.CanManageCatalog(middleware.CurrentUser(c), action) {
		h.Helper.SendForbidden(c)
		return
	}

	var req models.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	genre, err := h.genreService.Create(req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	action := permissions.FromMethod(c.Request.Method)
	if !permissions.CanManageCatalog(middleware.CurrentUser(c), action) {
		h.Helper.SendForbidden(c)
		return
	}

	if err := h.genreService.DeleteBySlug(c.Param("slug")); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
