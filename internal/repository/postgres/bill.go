package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

const billColumns = `
	id, vehicle_id, client_id, month, year, billing_class,
	rate, per_day_km_allowance, overtime_rate_per_km, overtime_kms,
	total_delta_sum, overtime_distance, overtime_amount, total_amount,
	created_at, updated_at
`

type billRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) repository.BillRepository {
	return &billRepository{db: db}
}

// Create writes the header, aggregates and line items in one transaction so
// a concurrent reader never observes a bill without its items.
func (r *billRepository) Create(ctx context.Context, bill *domain.MonthlyVehicleBill) error {
	logger.EnterMethod("billRepository.Create", "vehicleID", bill.VehicleID, "month", bill.Month, "year", bill.Year)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO monthly_vehicle_bills (
			vehicle_id, client_id, month, year, billing_class,
			rate, per_day_km_allowance, overtime_rate_per_km, overtime_kms,
			total_delta_sum, overtime_distance, overtime_amount, total_amount,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err = tx.QueryRowContext(ctx, query,
		bill.VehicleID, bill.ClientID, bill.Month, bill.Year, bill.Class,
		bill.Rate, bill.PerDayKMAllowance, bill.OvertimeRatePerKM, bill.OvertimeKMs,
		bill.TotalDeltaSum, bill.OvertimeDistance, bill.OvertimeAmount, bill.TotalAmount,
		now, now,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		logger.ExitMethodWithError("billRepository.Create", err, "vehicleID", bill.VehicleID)
		return err
	}

	if err := insertLineItems(ctx, tx, bill); err != nil {
		logger.ExitMethodWithError("billRepository.Create", err, "billID", bill.ID)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("billRepository.Create", err, "billID", bill.ID)
		return err
	}

	logger.ExitMethod("billRepository.Create", "billID", bill.ID)
	return nil
}

// Replace rebuilds the bill: updates the header and aggregates, discards
// every prior line item and writes the submitted set, atomically.
func (r *billRepository) Replace(ctx context.Context, bill *domain.MonthlyVehicleBill) error {
	logger.EnterMethod("billRepository.Replace", "billID", bill.ID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE monthly_vehicle_bills SET
			rate = $1,
			per_day_km_allowance = $2,
			overtime_rate_per_km = $3,
			overtime_kms = $4,
			total_delta_sum = $5,
			overtime_distance = $6,
			overtime_amount = $7,
			total_amount = $8,
			updated_at = $9
		WHERE id = $10
	`
	result, err := tx.ExecContext(ctx, query,
		bill.Rate, bill.PerDayKMAllowance, bill.OvertimeRatePerKM, bill.OvertimeKMs,
		bill.TotalDeltaSum, bill.OvertimeDistance, bill.OvertimeAmount, bill.TotalAmount,
		time.Now(), bill.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("billRepository.Replace", err, "billID", bill.ID)
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM bill_line_items WHERE bill_id = $1`, bill.ID); err != nil {
		logger.ExitMethodWithError("billRepository.Replace", err, "billID", bill.ID)
		return err
	}

	if err := insertLineItems(ctx, tx, bill); err != nil {
		logger.ExitMethodWithError("billRepository.Replace", err, "billID", bill.ID)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("billRepository.Replace", err, "billID", bill.ID)
		return err
	}

	logger.ExitMethod("billRepository.Replace", "billID", bill.ID, "items", len(bill.Items))
	return nil
}

func insertLineItems(ctx context.Context, tx *sql.Tx, bill *domain.MonthlyVehicleBill) error {
	query := `
		INSERT INTO bill_line_items (
			bill_id, item_date, start_meter, end_meter, delta, line_amount
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range bill.Items {
		item := &bill.Items[i]
		item.BillID = bill.ID
		err := tx.QueryRowContext(ctx, query,
			bill.ID, item.ItemDate, item.StartMeter, item.EndMeter, item.Delta, item.LineAmount,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert line item %d: %w", i, err)
		}
	}
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id int32) (*domain.MonthlyVehicleBill, error) {
	logger.EnterMethod("billRepository.GetByID", "billID", id)

	query := `SELECT ` + billColumns + ` FROM monthly_vehicle_bills WHERE id = $1`

	bill := &domain.MonthlyVehicleBill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&bill.ID, &bill.VehicleID, &bill.ClientID, &bill.Month, &bill.Year, &bill.Class,
		&bill.Rate, &bill.PerDayKMAllowance, &bill.OvertimeRatePerKM, &bill.OvertimeKMs,
		&bill.TotalDeltaSum, &bill.OvertimeDistance, &bill.OvertimeAmount, &bill.TotalAmount,
		&bill.CreatedAt, &bill.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		logger.ExitMethodWithError("billRepository.GetByID", err, "billID", id)
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("billRepository.GetByID", err, "billID", id)
		return nil, err
	}
	bill.Items = items

	logger.ExitMethod("billRepository.GetByID", "billID", id, "items", len(items))
	return bill, nil
}

func (r *billRepository) listItems(ctx context.Context, billID int32) ([]domain.BillLineItem, error) {
	query := `
		SELECT id, bill_id, TO_CHAR(item_date, 'YYYY-MM-DD'), start_meter, end_meter, delta, line_amount
		FROM bill_line_items
		WHERE bill_id = $1
		ORDER BY item_date ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.BillLineItem{}
	for rows.Next() {
		var item domain.BillLineItem
		err := rows.Scan(&item.ID, &item.BillID, &item.ItemDate, &item.StartMeter, &item.EndMeter, &item.Delta, &item.LineAmount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *billRepository) List(ctx context.Context, month, year, vehicleID int32) ([]domain.MonthlyVehicleBill, error) {
	logger.EnterMethod("billRepository.List", "month", month, "year", year, "vehicleID", vehicleID)

	query := `SELECT ` + billColumns + ` FROM monthly_vehicle_bills WHERE 1=1`

	args := []interface{}{}
	argIndex := 1

	if month > 0 {
		query += fmt.Sprintf(" AND month = $%d", argIndex)
		args = append(args, month)
		argIndex++
	}
	if year > 0 {
		query += fmt.Sprintf(" AND year = $%d", argIndex)
		args = append(args, year)
		argIndex++
	}
	if vehicleID > 0 {
		query += fmt.Sprintf(" AND vehicle_id = $%d", argIndex)
		args = append(args, vehicleID)
		argIndex++
	}

	query += " ORDER BY year ASC, month ASC, vehicle_id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError("billRepository.List", err)
		return nil, err
	}
	defer rows.Close()

	bills := []domain.MonthlyVehicleBill{}
	for rows.Next() {
		var b domain.MonthlyVehicleBill
		err := rows.Scan(
			&b.ID, &b.VehicleID, &b.ClientID, &b.Month, &b.Year, &b.Class,
			&b.Rate, &b.PerDayKMAllowance, &b.OvertimeRatePerKM, &b.OvertimeKMs,
			&b.TotalDeltaSum, &b.OvertimeDistance, &b.OvertimeAmount, &b.TotalAmount,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			logger.ExitMethodWithError("billRepository.List", err)
			return nil, err
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("billRepository.List", "count", len(bills))
	return bills, nil
}
