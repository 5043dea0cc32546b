package repository

import (
	"github.com/wisteria-dev/taskboard-api/internal/models"
	"github.com/wisteria-dev/taskboard-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (case-sensitive match)
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete soft deletes a user
	Delete(id uint64) error

	// ListTeam lists users with pagination, optionally filtered by a
	// case-insensitive search over name, title, role and email
	ListTeam(search string, params utils.PaginationParams) ([]models.User, int64, error)
}

// NoticeRepository defines the interface for notice data access
type NoticeRepository interface {
	// Create creates a notice addressed to the given recipients
	Create(notice *models.Notice, recipientIDs []uint64) error

	// FindByID finds a notice by ID
	FindByID(id uint64) (*models.Notice, error)

	// ListUnread lists notices addressed to the user that the user has not
	// read, newest first
	ListUnread(userID uint64) ([]models.Notice, error)

	// MarkRead adds the user to the notice's read set. Adding an existing
	// member is a no-op.
	MarkRead(userID, noticeID uint64) error

	// MarkAllRead adds the user to the read set of every notice addressed
	// to them, skipping notices already read. Each notice's update is
	// independent.
	MarkAllRead(userID uint64) error
}
