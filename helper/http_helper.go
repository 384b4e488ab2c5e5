package helper

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"title-review-api/metrics"
	"title-review-api/models"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// HTTPHelper owns payload validation and the error-to-status translation at
// the request boundary.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("username_format", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("not_me", func(fl validator.FieldLevel) bool {
		return fl.Field().String() != models.ReservedUsername
	})
	_ = v.RegisterValidation("slug_format", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	registerMessage(v, trans, "username_format", "{0} may contain only letters, digits and @/./+/-/_ characters")
	registerMessage(v, trans, "not_me", "\"me\" is not allowed as a {0}")
	registerMessage(v, trans, "slug_format", "{0} may contain only letters, digits, hyphens and underscores")

	return &HTTPHelper{Validate: v, Translator: trans}
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, message string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.(error).Error()
			}
			return t
		},
	)
}

// ValidateStruct runs the validate-tag rules and folds failures into a
// field-scoped validation error.
func (u *HTTPHelper) ValidateStruct(s interface{}) error {
	err := u.Validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &models.ErrorValidation{}
	for _, fe := range verrs {
		out.Add(fe.Field(), fe.Translate(u.Translator))
	}
	return out
}

// SendErrorResponse translates the service-layer error taxonomy to HTTP.
// Everything outside the taxonomy becomes an opaque 500.
func (u *HTTPHelper) SendErrorResponse(c *gin.Context, err error) {
	var (
		validation       *models.ErrorValidation
		notFound         *models.ErrorNotFound
		permission       *models.ErrorPermission
		conflict         *models.ErrorConflict
		methodNotAllowed *models.ErrorMethodNotAllowed
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, validation.Fields)
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFound.Error()})
	case errors.As(err, &permission):
		metrics.PermissionDenials.Inc()
		c.JSON(http.StatusForbidden, gin.H{"detail": permission.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"detail": conflict.Error()})
	case errors.As(err, &methodNotAllowed):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": methodNotAllowed.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// SendBindError reports a request-body or query binding failure.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}

// SendUnauthorized reports a missing or unusable credential.
func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": message})
}

// SendForbidden reports a permission denial decided in a handler.
func (u *HTTPHelper) SendForbidden(c *gin.Context) {
	metrics.PermissionDenials.Inc()
	c.JSON(http.StatusForbidden, gin.H{"detail": "you do not have permission to perform this action"})
}

func (u *HTTPHelper) getPagingURL(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path +
		"?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
}

// SendPaginated writes a count/next/previous/results envelope for list
// endpoints.
func (u *HTTPHelper) SendPaginated(c *gin.Context, total int64, page, limit int, results interface{}) {
	var next, previous interface{}
	if int64(page*limit) < total {
		next = u.getPagingURL(c, page+1, limit)
	}
	if page > 1 {
		previous = u.getPagingURL(c, page-1, limit)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    total,
		"next":     next,
		"previous": previous,
		"results":  results,
	})
}
