package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wisteria-dev/taskboard-api/internal/auth"
	"github.com/wisteria-dev/taskboard-api/internal/dto"
	apierrors "github.com/wisteria-dev/taskboard-api/internal/errors"
	"github.com/wisteria-dev/taskboard-api/internal/services"
	"go.uber.org/zap"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	issuer      *auth.TokenIssuer
	secure      bool
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler. secure controls the cookie's
// Secure flag and should be true in production.
func NewAuthHandler(authService *services.AuthService, issuer *auth.TokenIssuer, secure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		issuer:      issuer,
		secure:      secure,
		logger:      logger,
	}
}

// Login authenticates a user, attaches a session cookie and returns the
// public user view. Unknown email and wrong password produce the same
// response.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials),
			errors.Is(err, services.ErrAccountDeactivated):
			// Bad credentials are expected traffic, not an error condition.
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		default:
			h.logger.Error("login failed", zap.String("email", req.Email), zap.Error(err))
			apierrors.InternalError(c, "")
		}
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		h.logger.Error("token issuance failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		apierrors.InternalError(c, "")
		return
	}
	auth.AttachSession(c, token, h.secure)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    dto.ToUserDTO(*user),
	})
}

// Register creates a new user. Admin accounts are logged in immediately;
// everyone else must call Login afterwards. No user object is returned.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		IsAdmin  bool   `json:"is_admin"`
		Role     string `json:"role"`
		Title    string `json:"title"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid user data")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
		Role:     req.Role,
		Title:    req.Title,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrFailedToCreateUser):
			apierrors.BadRequest(c, "Invalid user data")
		default:
			h.logger.Error("registration failed", zap.String("email", req.Email), zap.Error(err))
			apierrors.InternalError(c, "")
		}
		return
	}

	if user.IsAdmin {
		token, err := h.issuer.Issue(user.ID)
		if err != nil {
			h.logger.Error("token issuance failed", zap.Uint64("user_id", user.ID), zap.Error(err))
			apierrors.InternalError(c, "")
			return
		}
		auth.AttachSession(c, token, h.secure)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "User registered successfully",
	})
}

// Logout clears the session cookie. Always succeeds, with or without an
// existing session.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSession(c, h.secure)

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Logged out successfully",
	})
}
