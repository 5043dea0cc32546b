package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wisteria-dev/taskboard-api/internal/constants"
)

// AttachSession binds the token to the response as an HTTP-only cookie.
// SameSite is always Strict; the Secure flag is set only in production so
// local development over plain HTTP keeps working. Client script can never
// read the token.
func AttachSession(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		constants.SessionCookieName,
		token,
		int(constants.TokenTTL.Seconds()),
		"/",
		"",
		secure,
		true,
	)
}

// ClearSession overwrites the session cookie with an empty value that
// expires immediately. Safe to call when no session exists.
func ClearSession(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		constants.SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
