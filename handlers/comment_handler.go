package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"title-review-api/helper"
	"title-review-api/middleware"
	"title-review-api/models"
	"title-review-api/services"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) commentPath(c *gin.Context) (titleID, reviewID uint, ok bool) {
	titleID, ok = parseID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok = parseID(c, "review_id")
	return
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	titleID, reviewID, ok := h.commentPath(c)
	if !ok {
		return
	}

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comments, total, err := h.commentService.GetList(titleID, reviewID, params)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	h.Helper.SendPaginated(c, total, params.Page, params.Limit, models.NewCommentResponses(comments))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	titleID, reviewID, ok := h.commentPath(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(titleID, reviewID, commentID)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewCommentResponse(comment))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	titleID, reviewID, ok := h.commentPath(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comment, err := h.commentService.Create(titleID, reviewID, middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewCommentResponse(comment))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	titleID, reviewID, ok := h.commentPath(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comment, err := h.commentService.Update(titleID, reviewID, commentID, middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewCommentResponse(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	titleID, reviewID, ok := h.commentPath(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(titleID, reviewID, commentID, middleware.CurrentUser(c)); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
