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

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	if !permissions.CanAdministerUsers(middleware.CurrentUser(c)) {
		h.Helper.SendForbidden(c)
		return
	}

	var params models.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	users, total, err := h.userService.GetList(params)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	h.Helper.SendPaginated(c, total, params.Page, params.Limit, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	if !permissions.CanAdministerUsers(middleware.CurrentUser(c)) {
		h.Helper.SendForbidden(c)
		return
	}

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	user, err := h.userService.Create(req)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// resolveTarget maps the "me" alias to the caller and gates every other
// username behind admin-tier authority.
func (h *UserHandler) resolveTarget(c *gin.Context) (string, bool) {
	actor := middleware.CurrentUser(c)
	username := c.Param("username")
	if username == models.ReservedUsername {
		return actor.Username, true
	}
	if !permissions.CanAdministerUsers(actor) {
		h.Helper.SendForbidden(c)
		return "", false
	}
	return username, true
}

func (h *UserHandler) GetUser(c *gin.Context) {
	username, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByUsername(username)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	isSelf := c.Param("username") == models.ReservedUsername
	username, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}

	user, err := h.userService.Update(username, req, !isSelf)
	if err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	// Deleting yourself through the alias is refused for every tier.
	if c.Param("username") == models.ReservedUsername {
		h.Helper.SendErrorResponse(c, &models.ErrorMethodNotAllowed{
			Message: "deleting your own profile is not allowed",
		})
		return
	}

	username, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(username); err != nil {
		h.Helper.SendErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
