package models

import "time"

type NoticeType string

const (
	NoticeTypeAlert   NoticeType = "alert"
	NoticeTypeMessage NoticeType = "message"
)

// Notice is a broadcast addressed to a set of recipients. Each recipient
// tracks its own read state independently via NoticeRead rows; the rows form
// a set, never a list.
type Notice struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	Type      NoticeType `gorm:"type:varchar(20);not null;default:'alert'" json:"type"`
	TaskID    *uint64    `json:"task_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Task       *Task             `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Recipients []NoticeRecipient `gorm:"foreignKey:NoticeID" json:"-"`
	Reads      []NoticeRead      `gorm:"foreignKey:NoticeID" json:"-"`
}

// NoticeRecipient addresses a notice to one user.
type NoticeRecipient struct {
	NoticeID uint64 `gorm:"primarykey" json:"notice_id"`
	UserID   uint64 `gorm:"primarykey" json:"user_id"`
}

// NoticeRead records that a user has read a notice. The composite primary
// key is what makes mark-read idempotent: inserts race to the same row and
// conflicts are dropped.
type NoticeRead struct {
	NoticeID uint64    `gorm:"primarykey" json:"notice_id"`
	UserID   uint64    `gorm:"primarykey" json:"user_id"`
	ReadAt   time.Time `gorm:"autoCreateTime" json:"read_at"`
}
