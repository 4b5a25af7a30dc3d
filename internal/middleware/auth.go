package middleware

import (
	"fmt"
	"strings"

	"realestate-listings/internal/auth"
	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			_ = c.Error(fmt.Errorf("authorization header required: %w", apperrors.ErrUnauthorized))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			_ = c.Error(fmt.Errorf("invalid authorization header format: %w", apperrors.ErrUnauthorized))
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			_ = c.Error(fmt.Errorf("%v: %w", err, apperrors.ErrUnauthorized))
			c.Abort()
			return
		}

		c.Set(currentUserKey, claims.CurrentUser())
		c.Next()
	}
}

// CurrentUser returns the identity stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.CurrentUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.CurrentUser{}, false
	}
	user, ok := v.(models.CurrentUser)
	return user, ok
}
