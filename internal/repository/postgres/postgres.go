package postgres

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/lib/pq"

	"fleetops-backend/internal/repository"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx; the
// repositories that support WithTx hold one of these instead of the pool.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.JobRepository
	repository.BillRepository
	repository.WorkerRepository
	repository.AttendanceRepository
	repository.SalaryPaymentRepository
	repository.ClientRepository
	repository.VehicleRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		JobRepository:           NewJobRepository(db),
		BillRepository:          NewBillRepository(db),
		WorkerRepository:        NewWorkerRepository(db),
		AttendanceRepository:    NewAttendanceRepository(db),
		SalaryPaymentRepository: NewSalaryPaymentRepository(db),
		ClientRepository:        NewClientRepository(db),
		VehicleRepository:       NewVehicleRepository(db),
		ReportRepository:        NewReportRepository(db),
	}
}

// DB exposes the underlying pool for callers that open their own
// transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Helper function to convert empty string to SQL NULL
func nullString(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
