package middleware

import (
	"strings"

	"article-review-cms/helper"
	"article-review-cms/models"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contextUserKey = "user"

type AuthMiddleware struct {
	authService services.AuthService
	helper      *helper.HTTPHelper
	logger      *zap.Logger
}

func NewAuthMiddleware(authService services.AuthService, httpHelper *helper.HTTPHelper, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		helper:      httpHelper,
		logger:      logger,
	}
}

// RequireAuth resolves the bearer token to the current user. Missing or bad
// credentials are answered with 403 like any other permission failure.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			am.helper.SendForbidden(c)
			c.Abort()
			return
		}

		user, err := am.authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			am.logger.Debug("Authentication rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err))
			am.helper.SendError(c, err)
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
