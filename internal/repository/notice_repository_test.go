package repository

import (
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/wisteria-dev/taskboard-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupNoticeRepo(t *testing.T) (NoticeRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Task{},
		&models.Notice{},
		&models.NoticeRecipient{},
		&models.NoticeRead{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One in-memory sqlite database per connection; pin the pool to a
	// single connection so goroutines share it.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewNoticeRepository(db), db
}

func TestGormNoticeRepository_MarkRead_ConcurrentConverges(t *testing.T) {
	repo, db := setupNoticeRepo(t)

	notice := &models.Notice{Text: "hello"}
	require.NoError(t, repo.Create(notice, []uint64{1}))

	// Concurrent marks from the same user must race to one row. sqlite
	// serializes writes; the conflict clause is what keeps this a set.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.MarkRead(1, notice.ID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.NoticeRead{}).
		Where("user_id = ? AND notice_id = ?", 1, notice.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGormNoticeRepository_MarkRead_ConflictSQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNoticeRepository(db)

	// The read-mark insert must carry the conflict clause; a plain insert
	// would stack duplicates under retries.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "notice_reads" .* ON CONFLICT \("notice_id","user_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.MarkRead(1, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}
