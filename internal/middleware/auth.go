package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wisteria-dev/taskboard-api/internal/auth"
	"github.com/wisteria-dev/taskboard-api/internal/constants"
	apierrors "github.com/wisteria-dev/taskboard-api/internal/errors"
	"github.com/wisteria-dev/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

// RequireAuth verifies the session cookie and loads the authenticated user.
// The token only proves identity; the admin flag is read from the store on
// every request so deletions and demotions take effect immediately.
func RequireAuth(issuer *auth.TokenIssuer, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(constants.SessionCookieName)
		if err != nil || tokenString == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := issuer.Verify(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Unauthorized(c, "")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyIsAdmin, user.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects requests from non-admin users. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			apierrors.Forbidden(c, "Not authorized as admin. Try login as admin.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// IsAdmin reports whether the current user has the admin flag
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(constants.ContextKeyIsAdmin)
	if !exists {
		return false
	}

	v, ok := isAdmin.(bool)
	return ok && v
}
