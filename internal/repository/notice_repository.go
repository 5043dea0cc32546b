package repository

import (
	"github.com/wisteria-dev/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNoticeRepository is a GORM implementation of NoticeRepository
type GormNoticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &GormNoticeRepository{db: db}
}

// Create creates a notice and its recipient rows in one transaction
func (r *GormNoticeRepository) Create(notice *models.Notice, recipientIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notice).Error; err != nil {
			return err
		}

		if len(recipientIDs) == 0 {
			return nil
		}

		recipients := make([]models.NoticeRecipient, len(recipientIDs))
		for i, userID := range recipientIDs {
			recipients[i] = models.NoticeRecipient{
				NoticeID: notice.ID,
				UserID:   userID,
			}
		}

		return tx.Create(&recipients).Error
	})
}

// FindByID finds a notice by ID
func (r *GormNoticeRepository) FindByID(id uint64) (*models.Notice, error) {
	var notice models.Notice
	if err := r.db.First(&notice, id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// ListUnread lists unread notices addressed to the user, newest first
func (r *GormNoticeRepository) ListUnread(userID uint64) ([]models.Notice, error) {
	var notices []models.Notice

	recipientSubQuery := r.db.Model(&models.NoticeRecipient{}).
		Select("1").
		Where("notice_recipients.notice_id = notices.id").
		Where("notice_recipients.user_id = ?", userID)

	readSubQuery := r.db.Model(&models.NoticeRead{}).
		Select("1").
		Where("notice_reads.notice_id = notices.id").
		Where("notice_reads.user_id = ?", userID)

	err := r.db.Model(&models.Notice{}).
		Where("EXISTS (?)", recipientSubQuery).
		Where("NOT EXISTS (?)", readSubQuery).
		Order("notices.id DESC").
		Preload("Task").
		Find(&notices).Error
	if err != nil {
		return nil, err
	}

	return notices, nil
}

// MarkRead adds the user to the notice's read set. The conflict clause makes
// retries and concurrent calls converge on a single row instead of stacking
// duplicates.
func (r *GormNoticeRepository) MarkRead(userID, noticeID uint64) error {
	read := models.NoticeRead{
		NoticeID: noticeID,
		UserID:   userID,
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notice_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&read).Error
}

// MarkAllRead marks every unread notice addressed to the user as read. The
// unread set is a snapshot at call time; notices created while this runs are
// not picked up.
func (r *GormNoticeRepository) MarkAllRead(userID uint64) error {
	var noticeIDs []uint64

	err := r.db.Model(&models.NoticeRecipient{}).
		Where("notice_recipients.user_id = ?", userID).
		Where("NOT EXISTS (?)", r.db.Model(&models.NoticeRead{}).
			Select("1").
			Where("notice_reads.notice_id = notice_recipients.notice_id").
			Where("notice_reads.user_id = ?", userID)).
		Pluck("notice_recipients.notice_id", &noticeIDs).Error
	if err != nil {
		return err
	}

	if len(noticeIDs) == 0 {
		return nil
	}

	reads := make([]models.NoticeRead, len(noticeIDs))
	for i, noticeID := range noticeIDs {
		reads[i] = models.NoticeRead{
			NoticeID: noticeID,
			UserID:   userID,
		}
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notice_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&reads).Error
}
