package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wisteria-dev/taskboard-api/internal/dto"
	apierrors "github.com/wisteria-dev/taskboard-api/internal/errors"
	"github.com/wisteria-dev/taskboard-api/internal/middleware"
	"github.com/wisteria-dev/taskboard-api/internal/services"
	"go.uber.org/zap"
)

// NotificationHandler serves the per-user notification read state.
type NotificationHandler struct {
	notificationService *services.NotificationService
	logger              *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications returns the current user's unread notices, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notices, err := h.notificationService.ListUnread(userID)
	if err != nil {
		h.logger.Error("listing notifications failed", zap.Uint64("user_id", userID), zap.Error(err))
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoticeDTOs(notices))
}

// MarkNotificationRead marks a single notice read (?id=) or all unread
// notices (?isReadType=all). Repeated calls are no-ops.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if c.Query("isReadType") == "all" {
		if err := h.notificationService.MarkAllRead(userID); err != nil {
			h.logger.Error("marking all notifications read failed", zap.Uint64("user_id", userID), zap.Error(err))
			apierrors.InternalError(c, "")
			return
		}
	} else {
		noticeID, err := strconv.ParseUint(c.Query("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid notification ID")
			return
		}

		if err := h.notificationService.MarkRead(userID, noticeID); err != nil {
			if errors.Is(err, services.ErrNoticeNotFound) {
				apierrors.NotFound(c, err.Error())
				return
			}
			h.logger.Error("marking notification read failed",
				zap.Uint64("user_id", userID),
				zap.Uint64("notice_id", noticeID),
				zap.Error(err))
			apierrors.InternalError(c, "")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Notifications marked as read",
	})
}
