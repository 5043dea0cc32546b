package dto

import (
	"time"

	"github.com/wisteria-dev/taskboard-api/internal/models"
)

// NoticeTaskDTO is the task association carried by a notice.
type NoticeTaskDTO struct {
	ID    uint64           `json:"id"`
	Title string           `json:"title"`
	Stage models.TaskStage `json:"stage"`
}

// NoticeDTO represents a notice in API responses
type NoticeDTO struct {
	ID        uint64            `json:"id"`
	Text      string            `json:"text"`
	Type      models.NoticeType `json:"type"`
	Task      *NoticeTaskDTO    `json:"task,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// ToNoticeDTO converts a notice to its API view
func ToNoticeDTO(notice models.Notice) NoticeDTO {
	n := NoticeDTO{
		ID:        notice.ID,
		Text:      notice.Text,
		Type:      notice.Type,
		CreatedAt: notice.CreatedAt,
	}

	if notice.Task != nil {
		n.Task = &NoticeTaskDTO{
			ID:    notice.Task.ID,
			Title: notice.Task.Title,
			Stage: notice.Task.Stage,
		}
	}

	return n
}

// ToNoticeDTOs converts a slice of notices preserving order
func ToNoticeDTOs(notices []models.Notice) []NoticeDTO {
	dtos := make([]NoticeDTO, len(notices))
	for i, notice := range notices {
		dtos[i] = ToNoticeDTO(notice)
	}
	return dtos
}
