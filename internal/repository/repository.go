package repository

import (
	"context"
	"database/sql"

	"fleetops-backend/internal/domain"
)

// JobFilter narrows job listings. Nil/empty fields match everything.
type JobFilter struct {
	ClientID  int32
	VehicleID int32
	Variant   domain.Variant
	Status    domain.JobStatus
	From      string
	To        string
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	CreateBatch(ctx context.Context, jobs []domain.Job) ([]domain.Job, error)
	GetByID(ctx context.Context, id int32) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
}

type BillRepository interface {
	// Create persists the bill header, its aggregates and its line items in
	// one transaction.
	Create(ctx context.Context, bill *domain.MonthlyVehicleBill) error
	// Replace discards every existing line item and writes the submitted
	// set plus the recomputed aggregates, in one transaction.
	Replace(ctx context.Context, bill *domain.MonthlyVehicleBill) error
	GetByID(ctx context.Context, id int32) (*domain.MonthlyVehicleBill, error)
	List(ctx context.Context, month, year, vehicleID int32) ([]domain.MonthlyVehicleBill, error)
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id int32) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	List(ctx context.Context) ([]domain.Worker, error)
}

type AttendanceRepository interface {
	// Upsert inserts or overwrites the mark for (worker, date).
	Upsert(ctx context.Context, record *domain.AttendanceRecord) error
	ListByWorker(ctx context.Context, workerID int32, from, to string) ([]domain.AttendanceRecord, error)
	// WithTx returns a copy bound to tx for transactional reads.
	WithTx(tx *sql.Tx) AttendanceRepository
}

type SalaryPaymentRepository interface {
	Create(ctx context.Context, payment *domain.SalaryPayment) error
	ListByWorker(ctx context.Context, workerID int32, from, to string) ([]domain.SalaryPayment, error)
	SumForPeriod(ctx context.Context, workerID int32, from, to string) (float64, error)
	// WithTx returns a copy bound to tx so a payment write can share a
	// transaction with the attendance read behind it.
	WithTx(tx *sql.Tx) SalaryPaymentRepository
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	CreatePayment(ctx context.Context, payment *domain.ClientPayment) error
	ListPayments(ctx context.Context, clientID int32, from, to string) ([]domain.ClientPayment, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	CreateExpense(ctx context.Context, expense *domain.VehicleExpense) error
	ListExpenses(ctx context.Context, vehicleID int32, from, to string) ([]domain.VehicleExpense, error)
}

// ReportRepository is read-only: sums and groupings over the persisted
// monetary facts, with no new arithmetic beyond summation.
type ReportRepository interface {
	SumJobs(ctx context.Context, filter JobFilter) (float64, error)
	SumJobsByVariant(ctx context.Context, month, year int32) (jcbTotal, lorryTotal float64, err error)
	SumClientPayments(ctx context.Context, clientID int32, from, to string) (float64, error)
	SumVehicleExpenses(ctx context.Context, vehicleID int32, from, to string) (float64, error)
	SumVehicleExpensesByMonth(ctx context.Context, month, year int32) (float64, error)
	SumSalaryPaymentsByMonth(ctx context.Context, month, year int32) (float64, error)
	DailyJobTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error)
	MonthlyJobTotals(ctx context.Context, year int32) ([]domain.MonthlyTotal, error)
}
