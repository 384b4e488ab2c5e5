package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"title-review-api/config"
	"title-review-api/helper"
	"title-review-api/models"
	"title-review-api/repositories"
)

const currentUserKey = "currentUser"

var HTTPHelper = helper.NewHTTPHelper()

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired validates the bearer token and loads the identity from the
// store, so role changes apply before the token expires.
func AuthRequired(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, users)
		if err != nil {
			HTTPHelper.SendUnauthorized(c, err.Error())
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// AuthOptional lets anonymous requests through with no identity but still
// rejects requests carrying an unusable token.
func AuthOptional(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		user, err := authenticate(c, users)
		if err != nil {
			HTTPHelper.SendUnauthorized(c, err.Error())
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func authenticate(c *gin.Context, users repositories.UserRepository) (*models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("authorization header required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errors.New("bearer token required")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, errors.New("invalid token: " + err.Error())
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	user, err := users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user no longer exists")
		}
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the authenticated identity, or nil for anonymous
// requests behind AuthOptional.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
