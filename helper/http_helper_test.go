package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"title-review-api/models"
)

func TestValidateStructUsernameRules(t *testing.T) {
	h := NewHTTPHelper()

	err := h.ValidateStruct(models.SignupRequest{Username: "bob.smith+1", Email: "b@x.com"})
	assert.NoError(t, err)

	var verr *models.ErrorValidation

	err = h.ValidateStruct(models.SignupRequest{Username: "bob smith", Email: "b@x.com"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")

	err = h.ValidateStruct(models.SignupRequest{Username: "me", Email: "b@x.com"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")

	err = h.ValidateStruct(models.SignupRequest{Username: "bob", Email: "not-an-email"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestValidateStructSlugRules(t *testing.T) {
	h := NewHTTPHelper()

	assert.NoError(t, h.ValidateStruct(models.CreateCategoryRequest{Name: "Books", Slug: "books_2024"}))

	var verr *models.ErrorValidation
	err := h.ValidateStruct(models.CreateCategoryRequest{Name: "Books", Slug: "books 2024"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "slug")
}

func TestSendErrorResponseStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	cases := []struct {
		err    error
		status int
	}{
		{models.NewFieldError("username", "bad"), http.StatusBadRequest},
		{&models.ErrorNotFound{Resource: "title"}, http.StatusNotFound},
		{&models.ErrorPermission{}, http.StatusForbidden},
		{&models.ErrorConflict{Message: "review exists"}, http.StatusBadRequest},
		{&models.ErrorMethodNotAllowed{Message: "no"}, http.StatusMethodNotAllowed},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.SendErrorResponse(c, tc.err)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
	}
}
