package auditlog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_GetByFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "audit_logs" WHERE action ILIKE $1 AND status = $2`)).
		WithArgs("%DOWNLOAD%", StatusFailure).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	created := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE action ILIKE $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`)).
		WithArgs("%DOWNLOAD%", StatusFailure, 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "status", "created_at"}).
			AddRow(3, ActionReportDownloadFailed, StatusFailure, created))

	logs, total, err := repo.GetByFilter(context.Background(), AuditLogFilter{
		Action: "DOWNLOAD",
		Status: StatusFailure,
		Page:   2,
		Limit:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(3), logs[0].ID)
	assert.Equal(t, ActionReportDownloadFailed, logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE "audit_logs"."id" = $1 ORDER BY "audit_logs"."id" LIMIT $2`)).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	log, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, log)
	assert.NoError(t, mock.ExpectationsWereMet())
}
