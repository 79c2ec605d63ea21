package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	logger.EnterMethod("vehicleRepository.Create", "name", vehicle.Name)

	query := `
		INSERT INTO vehicles (name, registration, variant, billing_class, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		vehicle.Name, nullString(vehicle.Registration), vehicle.Variant, vehicle.BillingClass, now, now,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("vehicleRepository.Create", err, "name", vehicle.Name)
		return err
	}

	logger.ExitMethod("vehicleRepository.Create", "vehicleID", vehicle.ID)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	logger.EnterMethod("vehicleRepository.GetByID", "vehicleID", id)

	query := `
		SELECT id, name, COALESCE(registration, ''), variant, billing_class, created_at, updated_at
		FROM vehicles WHERE id = $1
	`

	vehicle := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID, &vehicle.Name, &vehicle.Registration, &vehicle.Variant,
		&vehicle.BillingClass, &vehicle.CreatedAt, &vehicle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		logger.ExitMethodWithError("vehicleRepository.GetByID", err, "vehicleID", id)
		return nil, err
	}

	logger.ExitMethod("vehicleRepository.GetByID", "vehicleID", id)
	return vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	logger.EnterMethod("vehicleRepository.List")

	query := `
		SELECT id, name, COALESCE(registration, ''), variant, billing_class, created_at, updated_at
		FROM vehicles ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.ExitMethodWithError("vehicleRepository.List", err)
		return nil, err
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(&v.ID, &v.Name, &v.Registration, &v.Variant, &v.BillingClass, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			logger.ExitMethodWithError("vehicleRepository.List", err)
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("vehicleRepository.List", "count", len(vehicles))
	return vehicles, nil
}

func (r *vehicleRepository) CreateExpense(ctx context.Context, expense *domain.VehicleExpense) error {
	logger.EnterMethod("vehicleRepository.CreateExpense", "vehicleID", expense.VehicleID, "amount", expense.Amount)

	query := `
		INSERT INTO vehicle_expenses (vehicle_id, amount, spent_on, category, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		expense.VehicleID, expense.Amount, expense.SpentOn,
		nullString(expense.Category), nullString(expense.Note), time.Now(),
	).Scan(&expense.ID, &expense.CreatedAt)

	if err != nil {
		logger.ExitMethodWithError("vehicleRepository.CreateExpense", err, "vehicleID", expense.VehicleID)
		return err
	}

	logger.ExitMethod("vehicleRepository.CreateExpense", "expenseID", expense.ID)
	return nil
}

func (r *vehicleRepository) ListExpenses(ctx context.Context, vehicleID int32, from, to string) ([]domain.VehicleExpense, error) {
	logger.EnterMethod("vehicleRepository.ListExpenses", "vehicleID", vehicleID)

	query := `
		SELECT id, vehicle_id, amount, TO_CHAR(spent_on, 'YYYY-MM-DD'), COALESCE(category, ''), COALESCE(note, ''), created_at
		FROM vehicle_expenses
		WHERE vehicle_id = $1 AND spent_on >= $2 AND spent_on <= $3
		ORDER BY spent_on ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, vehicleID, from, to)
	if err != nil {
		logger.ExitMethodWithError("vehicleRepository.ListExpenses", err, "vehicleID", vehicleID)
		return nil, err
	}
	defer rows.Close()

	expenses := []domain.VehicleExpense{}
	for rows.Next() {
		var e domain.VehicleExpense
		err := rows.Scan(&e.ID, &e.VehicleID, &e.Amount, &e.SpentOn, &e.Category, &e.Note, &e.CreatedAt)
		if err != nil {
			logger.ExitMethodWithError("vehicleRepository.ListExpenses", err, "vehicleID", vehicleID)
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("vehicleRepository.ListExpenses", "vehicleID", vehicleID, "count", len(expenses))
	return expenses, nil
}
