package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wisteria-dev/taskboard-api/internal/dto"
	apierrors "github.com/wisteria-dev/taskboard-api/internal/errors"
	"github.com/wisteria-dev/taskboard-api/internal/middleware"
	"github.com/wisteria-dev/taskboard-api/internal/services"
	"github.com/wisteria-dev/taskboard-api/internal/utils"
	"go.uber.org/zap"
)

// UserHandler covers profile and account administration endpoints.
type UserHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		logger:      logger,
	}
}

// GetCurrentUser returns the authenticated user.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile updates name/title/role. Admins may target another user by
// passing its id; everyone else can only update themselves.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	type UpdateProfileRequest struct {
		ID    uint64 `json:"id"`
		Name  string `json:"name"`
		Title string `json:"title"`
		Role  string `json:"role"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	targetID := userID
	if middleware.IsAdmin(c) && req.ID != 0 {
		targetID = req.ID
	}

	if _, err := h.authService.UpdateProfile(targetID, services.UpdateProfileInput{
		Name:  req.Name,
		Title: req.Title,
		Role:  req.Role,
	}); err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Profile updated successfully",
	})
}

// ChangePassword re-hashes and stores the new password for the current user.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		Password string `json:"password" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(userID, req.Password); err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Password changed successfully",
	})
}

// SetActive activates or deactivates an account. Admin only.
func (h *UserHandler) SetActive(c *gin.Context) {
	type SetActiveRequest struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.SetActive(targetID, *req.IsActive)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	verb := "disabled"
	if user.IsActive {
		verb = "activated"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": fmt.Sprintf("User account has been %s", verb),
	})
}

// DeleteUser removes an account. Admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.authService.DeleteUser(targetID); err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "User deleted successfully",
	})
}

// GetTeamList lists users page by page, optionally filtered by a search
// term.
func (h *UserHandler) GetTeamList(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.authService.ListTeam(c.Query("search"), params)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	members := make([]dto.TeamMemberDTO, len(users))
	for i, user := range users {
		members[i] = dto.ToTeamMemberDTO(user)
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

func (h *UserHandler) respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		h.logger.Error("user operation failed", zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
