package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"fleetops-backend/internal/domain"
)

func TestAttendanceRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	t.Run("InsertsNewMark", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("INSERT INTO attendance_records").
			WithArgs(int32(1), "2026-03-10", domain.AttendancePresent, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int32(5), now, now))

		record := &domain.AttendanceRecord{
			WorkerID:       1,
			AttendanceDate: "2026-03-10",
			Status:         domain.AttendancePresent,
		}
		err := repo.Upsert(ctx, record)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), record.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SecondMarkSameKeyOverwrites", func(t *testing.T) {
		now := time.Now()
		// Same (worker, date), different status: the row id stays the same.
		mock.ExpectQuery("INSERT INTO attendance_records").
			WithArgs(int32(1), "2026-03-10", domain.AttendanceHalfDay, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int32(5), now, now))

		record := &domain.AttendanceRecord{
			WorkerID:       1,
			AttendanceDate: "2026-03-10",
			Status:         domain.AttendanceHalfDay,
		}
		err := repo.Upsert(ctx, record)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), record.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceRepository_ListByWorker(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "worker_id", "to_char", "status", "created_at", "updated_at"}).
		AddRow(int32(1), int32(1), "2026-03-01", "present", now, now).
		AddRow(int32(2), int32(1), "2026-03-02", "half_day", now, now)

	mock.ExpectQuery("SELECT id, worker_id, TO_CHAR").
		WithArgs(int32(1), "2026-03-01", "2026-03-31").
		WillReturnRows(rows)

	records, err := repo.ListByWorker(ctx, 1, "2026-03-01", "2026-03-31")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "2026-03-01", records[0].AttendanceDate)
	assert.Equal(t, domain.AttendanceHalfDay, records[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
