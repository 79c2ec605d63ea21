package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) SumJobs(ctx context.Context, filter repository.JobFilter) (float64, error) {
	logger.EnterMethod("reportRepository.SumJobs", "clientID", filter.ClientID, "vehicleID", filter.VehicleID)

	query := `SELECT COALESCE(SUM(total_amount), 0) FROM jobs WHERE 1=1`

	args := []interface{}{}
	argIndex := 1

	if filter.ClientID > 0 {
		query += fmt.Sprintf(" AND client_id = $%d", argIndex)
		args = append(args, filter.ClientID)
		argIndex++
	}
	if filter.VehicleID > 0 {
		query += fmt.Sprintf(" AND vehicle_id = $%d", argIndex)
		args = append(args, filter.VehicleID)
		argIndex++
	}
	if filter.Variant != "" {
		query += fmt.Sprintf(" AND variant = $%d", argIndex)
		args = append(args, filter.Variant)
		argIndex++
	}
	if filter.From != "" {
		query += fmt.Sprintf(" AND job_date >= $%d", argIndex)
		args = append(args, filter.From)
		argIndex++
	}
	if filter.To != "" {
		query += fmt.Sprintf(" AND job_date <= $%d", argIndex)
		args = append(args, filter.To)
		argIndex++
	}

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.ExitMethodWithError("reportRepository.SumJobs", err)
		return 0, err
	}

	logger.ExitMethod("reportRepository.SumJobs", "total", total)
	return total, nil
}

func (r *reportRepository) SumJobsByVariant(ctx context.Context, month, year int32) (float64, float64, error) {
	logger.EnterMethod("reportRepository.SumJobsByVariant", "month", month, "year", year)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN variant = 'jcb' THEN total_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN variant = 'lorry' THEN total_amount ELSE 0 END), 0)
		FROM jobs
		WHERE EXTRACT(MONTH FROM job_date) = $1 AND EXTRACT(YEAR FROM job_date) = $2
	`

	var jcbTotal, lorryTotal float64
	if err := r.db.QueryRowContext(ctx, query, month, year).Scan(&jcbTotal, &lorryTotal); err != nil {
		logger.ExitMethodWithError("reportRepository.SumJobsByVariant", err)
		return 0, 0, err
	}

	logger.ExitMethod("reportRepository.SumJobsByVariant", "jcb", jcbTotal, "lorry", lorryTotal)
	return jcbTotal, lorryTotal, nil
}

func (r *reportRepository) SumClientPayments(ctx context.Context, clientID int32, from, to string) (float64, error) {
	logger.EnterMethod("reportRepository.SumClientPayments", "clientID", clientID)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM client_payments
		WHERE client_id = $1 AND paid_on >= $2 AND paid_on <= $3
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, clientID, from, to).Scan(&total); err != nil {
		logger.ExitMethodWithError("reportRepository.SumClientPayments", err, "clientID", clientID)
		return 0, err
	}

	logger.ExitMethod("reportRepository.SumClientPayments", "total", total)
	return total, nil
}

func (r *reportRepository) SumVehicleExpenses(ctx context.Context, vehicleID int32, from, to string) (float64, error) {
	logger.EnterMethod("reportRepository.SumVehicleExpenses", "vehicleID", vehicleID)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM vehicle_expenses
		WHERE vehicle_id = $1 AND spent_on >= $2 AND spent_on <= $3
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, vehicleID, from, to).Scan(&total); err != nil {
		logger.ExitMethodWithError("reportRepository.SumVehicleExpenses", err, "vehicleID", vehicleID)
		return 0, err
	}

	logger.ExitMethod("reportRepository.SumVehicleExpenses", "total", total)
	return total, nil
}

func (r *reportRepository) SumVehicleExpensesByMonth(ctx context.Context, month, year int32) (float64, error) {
	logger.EnterMethod("reportRepository.SumVehicleExpensesByMonth", "month", month, "year", year)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM vehicle_expenses
		WHERE EXTRACT(MONTH FROM spent_on) = $1 AND EXTRACT(YEAR FROM spent_on) = $2
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, month, year).Scan(&total); err != nil {
		logger.ExitMethodWithError("reportRepository.SumVehicleExpensesByMonth", err)
		return 0, err
	}

	logger.ExitMethod("reportRepository.SumVehicleExpensesByMonth", "total", total)
	return total, nil
}

func (r *reportRepository) SumSalaryPaymentsByMonth(ctx context.Context, month, year int32) (float64, error) {
	logger.EnterMethod("reportRepository.SumSalaryPaymentsByMonth", "month", month, "year", year)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE EXTRACT(MONTH FROM paid_on) = $1 AND EXTRACT(YEAR FROM paid_on) = $2
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, month, year).Scan(&total); err != nil {
		logger.ExitMethodWithError("reportRepository.SumSalaryPaymentsByMonth", err)
		return 0, err
	}

	logger.ExitMethod("reportRepository.SumSalaryPaymentsByMonth", "total", total)
	return total, nil
}

// DailyJobTotals buckets job income by calendar date, ascending.
func (r *reportRepository) DailyJobTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error) {
	logger.EnterMethod("reportRepository.DailyJobTotals", "from", from, "to", to)

	query := `
		SELECT TO_CHAR(job_date, 'YYYY-MM-DD'), COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM jobs
		WHERE job_date >= $1 AND job_date <= $2
		GROUP BY job_date
		ORDER BY job_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		logger.ExitMethodWithError("reportRepository.DailyJobTotals", err)
		return nil, err
	}
	defer rows.Close()

	totals := []domain.DailyTotal{}
	for rows.Next() {
		var t domain.DailyTotal
		if err := rows.Scan(&t.Date, &t.JobCount, &t.JobTotal); err != nil {
			logger.ExitMethodWithError("reportRepository.DailyJobTotals", err)
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("reportRepository.DailyJobTotals", "count", len(totals))
	return totals, nil
}

// MonthlyJobTotals buckets job income by (month, year) for one year,
// ascending chronological.
func (r *reportRepository) MonthlyJobTotals(ctx context.Context, year int32) ([]domain.MonthlyTotal, error) {
	logger.EnterMethod("reportRepository.MonthlyJobTotals", "year", year)

	query := `
		SELECT EXTRACT(MONTH FROM job_date)::int, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM jobs
		WHERE EXTRACT(YEAR FROM job_date) = $1
		GROUP BY EXTRACT(MONTH FROM job_date)
		ORDER BY EXTRACT(MONTH FROM job_date) ASC
	`

	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		logger.ExitMethodWithError("reportRepository.MonthlyJobTotals", err)
		return nil, err
	}
	defer rows.Close()

	totals := []domain.MonthlyTotal{}
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.JobCount, &t.JobTotal); err != nil {
			logger.ExitMethodWithError("reportRepository.MonthlyJobTotals", err)
			return nil, err
		}
		t.Year = year
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("reportRepository.MonthlyJobTotals", "count", len(totals))
	return totals, nil
}
