package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type salaryPaymentRepository struct {
	db querier
}

func NewSalaryPaymentRepository(db *sql.DB) repository.SalaryPaymentRepository {
	return &salaryPaymentRepository{db: db}
}

func (r *salaryPaymentRepository) WithTx(tx *sql.Tx) repository.SalaryPaymentRepository {
	return &salaryPaymentRepository{db: tx}
}

func (r *salaryPaymentRepository) Create(ctx context.Context, payment *domain.SalaryPayment) error {
	logger.EnterMethod("salaryPaymentRepository.Create", "workerID", payment.WorkerID, "amount", payment.Amount)

	query := `
		INSERT INTO salary_payments (worker_id, amount, period_from, period_to, paid_on, reference, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		payment.WorkerID, payment.Amount, payment.PeriodFrom, payment.PeriodTo,
		nullString(payment.PaidOn), payment.Reference, nullString(payment.Note), time.Now(),
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		logger.ExitMethodWithError("salaryPaymentRepository.Create", err, "workerID", payment.WorkerID)
		return err
	}

	logger.ExitMethod("salaryPaymentRepository.Create", "paymentID", payment.ID)
	return nil
}

func (r *salaryPaymentRepository) ListByWorker(ctx context.Context, workerID int32, from, to string) ([]domain.SalaryPayment, error) {
	logger.EnterMethod("salaryPaymentRepository.ListByWorker", "workerID", workerID)

	query := `
		SELECT id, worker_id, amount,
		       TO_CHAR(period_from, 'YYYY-MM-DD'), TO_CHAR(period_to, 'YYYY-MM-DD'),
		       COALESCE(TO_CHAR(paid_on, 'YYYY-MM-DD'), ''), reference, COALESCE(note, ''), created_at
		FROM salary_payments
		WHERE worker_id = $1 AND period_from >= $2 AND period_to <= $3
		ORDER BY paid_on ASC NULLS LAST, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workerID, from, to)
	if err != nil {
		logger.ExitMethodWithError("salaryPaymentRepository.ListByWorker", err, "workerID", workerID)
		return nil, err
	}
	defer rows.Close()

	payments := []domain.SalaryPayment{}
	for rows.Next() {
		var p domain.SalaryPayment
		err := rows.Scan(&p.ID, &p.WorkerID, &p.Amount, &p.PeriodFrom, &p.PeriodTo, &p.PaidOn, &p.Reference, &p.Note, &p.CreatedAt)
		if err != nil {
			logger.ExitMethodWithError("salaryPaymentRepository.ListByWorker", err, "workerID", workerID)
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("salaryPaymentRepository.ListByWorker", "workerID", workerID, "count", len(payments))
	return payments, nil
}

// SumForPeriod totals payments already recorded inside [from, to], used to
// net the entitlement down to a balance.
func (r *salaryPaymentRepository) SumForPeriod(ctx context.Context, workerID int32, from, to string) (float64, error) {
	logger.EnterMethod("salaryPaymentRepository.SumForPeriod", "workerID", workerID)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE worker_id = $1 AND period_from >= $2 AND period_to <= $3
	`

	var total float64
	err := r.db.QueryRowContext(ctx, query, workerID, from, to).Scan(&total)
	if err != nil {
		logger.ExitMethodWithError("salaryPaymentRepository.SumForPeriod", err, "workerID", workerID)
		return 0, err
	}

	logger.ExitMethod("salaryPaymentRepository.SumForPeriod", "workerID", workerID, "total", total)
	return total, nil
}
