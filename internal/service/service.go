package service

import (
	"context"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/repository"
)

// JobService owns the job lifecycle. It is the only writer of a job's
// total_amount; caller-supplied totals are never read.
type JobService interface {
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// CreateJobBatch prices and persists many jobs sharing one client and
	// date, each costed by the same rule as a single entry.
	CreateJobBatch(ctx context.Context, jobs []domain.Job) ([]domain.Job, error)
	GetJob(ctx context.Context, id int32) (*domain.Job, error)
	ListJobs(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error)
	CompleteJob(ctx context.Context, id int32, endMeter *float64) (*domain.Job, error)
	MarkJobPaid(ctx context.Context, id int32) (*domain.Job, error)
}

// BillService builds monthly vehicle bills. An update replaces the entire
// item set and recomputes every aggregate inside one transaction.
type BillService interface {
	CreateBill(ctx context.Context, bill *domain.MonthlyVehicleBill) (*domain.MonthlyVehicleBill, error)
	UpdateBill(ctx context.Context, id int32, bill *domain.MonthlyVehicleBill) (*domain.MonthlyVehicleBill, error)
	GetBill(ctx context.Context, id int32) (*domain.MonthlyVehicleBill, error)
	ListBills(ctx context.Context, month, year, vehicleID int32) ([]domain.MonthlyVehicleBill, error)
}

// PayrollService covers attendance marks, entitlement calculation and
// payment recording. Calculation never writes; recording is the separate
// confirm step.
type PayrollService interface {
	MarkAttendance(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	ListAttendance(ctx context.Context, workerID int32, from, to string) ([]domain.AttendanceRecord, error)
	CalculateSalary(ctx context.Context, period domain.SalaryPeriod) (*domain.SalaryStatement, error)
	RecordSalaryPayment(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error)
	ListSalaryPayments(ctx context.Context, workerID int32, from, to string) ([]domain.SalaryPayment, error)
}

// ReportService is read-only aggregation over persisted monetary facts.
type ReportService interface {
	ClientStatement(ctx context.Context, clientID int32, from, to string) (*domain.ClientStatement, error)
	VehicleReport(ctx context.Context, vehicleID int32, from, to string) (*domain.VehicleReport, error)
	MonthlyProfitLoss(ctx context.Context, month, year int32) (*domain.ProfitLoss, error)
	DailyTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error)
	MonthlyTotals(ctx context.Context, year int32) ([]domain.MonthlyTotal, error)
}

// RegistryService is thin CRUD over the referential entities the engine
// bills against.
type RegistryService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	RecordClientPayment(ctx context.Context, payment *domain.ClientPayment) (*domain.ClientPayment, error)

	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	RecordVehicleExpense(ctx context.Context, expense *domain.VehicleExpense) (*domain.VehicleExpense, error)

	CreateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
}
