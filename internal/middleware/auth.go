package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reviewboard/internal/logger"
	"reviewboard/internal/models"
	"reviewboard/internal/services"
	"reviewboard/pkg/apperrors"
	"reviewboard/pkg/contextkeys"
)

// Gin context key set by TokenAuthMiddleware.
const ContextUserKey = "user"

// TokenAuthMiddleware resolves the bearer token from the Authorization
// header to an active user. Must run after DBMiddleware.
func TokenAuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}

		user, err := authService.Authenticate(db.(*gorm.DB), key)
		if err != nil {
			// A database fault is not an authentication failure.
			var appErr *apperrors.AppError
			if apperrors.As(err, &appErr) && appErr.HTTPCode >= http.StatusInternalServerError {
				apperrors.HandleError(c, appErr)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// CurrentUser extracts the authenticated user placed by TokenAuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
