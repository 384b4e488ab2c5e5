package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"title-review-api/helper"
	"title-review-api/middleware"
	"title-review-api/models"
	"title-review-api/services"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService, h *helper.HTTPHelper) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, Helper: h}
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	titleID, ok := parseID(c, "title_id")
	if !ok {
		return
	}

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	reviews, total, err := h.reviewService.GetList(titleID, params)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	h.Helper.SendPaginated(c, total, params.Page, params.Limit, models.NewReviewResponses(reviews))
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	titleID, ok := parseID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(titleID, reviewID)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewReviewResponse(review))
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	titleID, ok := parseID(c, "title_id")
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	review, err := h.reviewService.Create(titleID, middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewReviewResponse(review))
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	titleID, ok := parseID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	review, err := h.reviewService.Update(titleID, reviewID, middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewReviewResponse(review))
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	titleID, ok := parseID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(titleID, reviewID, middleware.CurrentUser(c)); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
