package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"title-review-api/helper"
	"title-review-api/models"
	"title-review-api/services"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

// Signup echoes the submitted payload with 200 on success; the confirmation
// code travels out of band through the notifier.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	if err := h.authService.Signup(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	token, err := h.authService.IssueToken(req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
