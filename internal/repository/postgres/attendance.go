package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type attendanceRepository struct {
	db querier
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) WithTx(tx *sql.Tx) repository.AttendanceRepository {
	return &attendanceRepository{db: tx}
}

// Upsert writes the mark for (worker, date). A second mark for the same
// key overwrites, never duplicates.
func (r *attendanceRepository) Upsert(ctx context.Context, record *domain.AttendanceRecord) error {
	logger.EnterMethod("attendanceRepository.Upsert", "workerID", record.WorkerID, "date", record.AttendanceDate, "status", record.Status)

	query := `
		INSERT INTO attendance_records (worker_id, attendance_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (worker_id, attendance_date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		record.WorkerID, record.AttendanceDate, record.Status, now, now,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("attendanceRepository.Upsert", err, "workerID", record.WorkerID)
		return err
	}

	logger.ExitMethod("attendanceRepository.Upsert", "recordID", record.ID)
	return nil
}

func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID int32, from, to string) ([]domain.AttendanceRecord, error) {
	logger.EnterMethod("attendanceRepository.ListByWorker", "workerID", workerID, "from", from, "to", to)

	query := `
		SELECT id, worker_id, TO_CHAR(attendance_date, 'YYYY-MM-DD'), status, created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1 AND attendance_date >= $2 AND attendance_date <= $3
		ORDER BY attendance_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workerID, from, to)
	if err != nil {
		logger.ExitMethodWithError("attendanceRepository.ListByWorker", err, "workerID", workerID)
		return nil, err
	}
	defer rows.Close()

	records := []domain.AttendanceRecord{}
	for rows.Next() {
		var rec domain.AttendanceRecord
		err := rows.Scan(&rec.ID, &rec.WorkerID, &rec.AttendanceDate, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			logger.ExitMethodWithError("attendanceRepository.ListByWorker", err, "workerID", workerID)
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("attendanceRepository.ListByWorker", "workerID", workerID, "count", len(records))
	return records, nil
}
