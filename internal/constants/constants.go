package constants

import "time"

// Session
const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "taskboard_token"

	// TokenTTL bounds the lifetime of an issued session token. The cookie
	// MaxAge mirrors this value; the token expiry is the enforcement point.
	TokenTTL = 24 * time.Hour
)

// Context keys
const (
	ContextKeyUserID  = "user_id"
	ContextKeyIsAdmin = "is_admin"
)

// Password hashing
const (
	// BcryptCost matches the 10 salt rounds used for all existing digests.
	BcryptCost = 10
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
