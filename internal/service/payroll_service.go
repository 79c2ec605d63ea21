package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fleetops-backend/internal/billing"
	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type payrollService struct {
	db             *sql.DB
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	paymentRepo    repository.SalaryPaymentRepository
}

func NewPayrollService(
	db *sql.DB,
	workerRepo repository.WorkerRepository,
	attendanceRepo repository.AttendanceRepository,
	paymentRepo repository.SalaryPaymentRepository,
) PayrollService {
	return &payrollService{
		db:             db,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
	}
}

func (s *payrollService) MarkAttendance(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	logger.EnterMethod("payrollService.MarkAttendance", "workerID", record.WorkerID, "date", record.AttendanceDate)

	if err := record.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.workerRepo.GetByID(ctx, record.WorkerID); err != nil {
		return nil, fmt.Errorf("worker %d: %w", record.WorkerID, err)
	}

	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		logger.ExitMethodWithError("payrollService.MarkAttendance", err, "workerID", record.WorkerID)
		return nil, err
	}

	logger.ExitMethod("payrollService.MarkAttendance", "workerID", record.WorkerID, "status", record.Status)
	return record, nil
}

func (s *payrollService) ListAttendance(ctx context.Context, workerID int32, from, to string) ([]domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByWorker(ctx, workerID, from, to)
}

// CalculateSalary computes the entitlement for a period without writing
// anything. Running it twice returns the same statement.
func (s *payrollService) CalculateSalary(ctx context.Context, period domain.SalaryPeriod) (*domain.SalaryStatement, error) {
	logger.EnterMethod("payrollService.CalculateSalary", "workerID", period.WorkerID, "from", period.PeriodFrom, "to", period.PeriodTo)

	if err := period.Validate(); err != nil {
		return nil, err
	}
	worker, err := s.workerRepo.GetByID(ctx, period.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("worker %d: %w", period.WorkerID, err)
	}

	records, err := s.attendanceRepo.ListByWorker(ctx, period.WorkerID, period.PeriodFrom, period.PeriodTo)
	if err != nil {
		logger.ExitMethodWithError("payrollService.CalculateSalary", err, "workerID", period.WorkerID)
		return nil, err
	}

	breakdown, err := billing.Entitlement(worker, period.PeriodFrom, period.PeriodTo, records)
	if err != nil {
		return nil, err
	}

	paid, err := s.paymentRepo.SumForPeriod(ctx, period.WorkerID, period.PeriodFrom, period.PeriodTo)
	if err != nil {
		logger.ExitMethodWithError("payrollService.CalculateSalary", err, "workerID", period.WorkerID)
		return nil, err
	}

	statement := &domain.SalaryStatement{
		WorkerID:    period.WorkerID,
		PeriodFrom:  period.PeriodFrom,
		PeriodTo:    period.PeriodTo,
		PresentDays: breakdown.PresentDays,
		HalfDays:    breakdown.HalfDays,
		AbsentDays:  breakdown.AbsentDays,
		WorkedDays:  breakdown.WorkedDays,
		Amount:      breakdown.Amount,
		PaidTotal:   paid,
		Balance:     billing.Round2(breakdown.Amount - paid),
	}

	logger.ExitMethod("payrollService.CalculateSalary", "workerID", period.WorkerID, "amount", statement.Amount)
	return statement, nil
}

// RecordSalaryPayment is the confirm step after CalculateSalary. The
// attendance read and the payment insert share one transaction so a mark
// changed mid-flight cannot slip between them.
func (s *payrollService) RecordSalaryPayment(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	logger.EnterMethod("payrollService.RecordSalaryPayment", "workerID", payment.WorkerID, "amount", payment.Amount)

	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.workerRepo.GetByID(ctx, payment.WorkerID); err != nil {
		return nil, fmt.Errorf("worker %d: %w", payment.WorkerID, err)
	}

	if payment.Reference == "" {
		payment.Reference = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Touch the attendance rows inside the transaction so the paid period
	// is recorded against the marks as they stood at commit time.
	if _, err := s.attendanceRepo.WithTx(tx).ListByWorker(ctx, payment.WorkerID, payment.PeriodFrom, payment.PeriodTo); err != nil {
		logger.ExitMethodWithError("payrollService.RecordSalaryPayment", err, "workerID", payment.WorkerID)
		return nil, err
	}

	if err := s.paymentRepo.WithTx(tx).Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("payrollService.RecordSalaryPayment", err, "workerID", payment.WorkerID)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	logger.ExitMethod("payrollService.RecordSalaryPayment", "paymentID", payment.ID, "reference", payment.Reference)
	return payment, nil
}

func (s *payrollService) ListSalaryPayments(ctx context.Context, workerID int32, from, to string) ([]domain.SalaryPayment, error) {
	return s.paymentRepo.ListByWorker(ctx, workerID, from, to)
}
