package services

import (
	"errors"
	"fmt"

	"github.com/wisteria-dev/taskboard-api/internal/models"
	"github.com/wisteria-dev/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// NotificationService handles the per-user read state of broadcast notices.
type NotificationService struct {
	noticeRepo repository.NoticeRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(noticeRepo repository.NoticeRepository) *NotificationService {
	return &NotificationService{
		noticeRepo: noticeRepo,
	}
}

// PublishInput describes a notice to broadcast.
type PublishInput struct {
	Text       string
	Type       models.NoticeType
	TaskID     *uint64
	Recipients []uint64
}

// Publish creates a notice addressed to the given recipients. Task lifecycle
// events are the usual caller.
func (s *NotificationService) Publish(input PublishInput) (*models.Notice, error) {
	noticeType := input.Type
	if noticeType == "" {
		noticeType = models.NoticeTypeAlert
	}

	notice := &models.Notice{
		Text:   input.Text,
		Type:   noticeType,
		TaskID: input.TaskID,
	}

	if err := s.noticeRepo.Create(notice, input.Recipients); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}

	return notice, nil
}

// ListUnread returns the user's unread notices, newest first. Read-only.
func (s *NotificationService) ListUnread(userID uint64) ([]models.Notice, error) {
	notices, err := s.noticeRepo.ListUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	return notices, nil
}

// MarkRead adds the user to the notice's read set. Marking an already-read
// notice is a no-op; marking a nonexistent notice is an error.
func (s *NotificationService) MarkRead(userID, noticeID uint64) error {
	if _, err := s.noticeRepo.FindByID(noticeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		return fmt.Errorf("failed to find notice: %w", err)
	}

	if err := s.noticeRepo.MarkRead(userID, noticeID); err != nil {
		return fmt.Errorf("failed to mark notice read: %w", err)
	}

	return nil
}

// MarkAllRead marks every unread notice addressed to the user as read.
func (s *NotificationService) MarkAllRead(userID uint64) error {
	if err := s.noticeRepo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark notices read: %w", err)
	}

	return nil
}
