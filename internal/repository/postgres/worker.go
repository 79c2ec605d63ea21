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

type workerRepository struct {
	db *sql.DB
}

func NewWorkerRepository(db *sql.DB) repository.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	logger.EnterMethod("workerRepository.Create", "name", worker.Name)

	query := `
		INSERT INTO workers (name, phone, salary_type, daily_rate, monthly_salary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		worker.Name, nullString(worker.Phone), worker.SalaryType,
		worker.DailyRate, worker.MonthlySalary, now, now,
	).Scan(&worker.ID, &worker.CreatedAt, &worker.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("workerRepository.Create", err, "name", worker.Name)
		return err
	}

	logger.ExitMethod("workerRepository.Create", "workerID", worker.ID)
	return nil
}

func (r *workerRepository) GetByID(ctx context.Context, id int32) (*domain.Worker, error) {
	logger.EnterMethod("workerRepository.GetByID", "workerID", id)

	query := `
		SELECT id, name, COALESCE(phone, ''), salary_type, daily_rate, monthly_salary, created_at, updated_at
		FROM workers WHERE id = $1
	`

	worker := &domain.Worker{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&worker.ID, &worker.Name, &worker.Phone, &worker.SalaryType,
		&worker.DailyRate, &worker.MonthlySalary, &worker.CreatedAt, &worker.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		logger.ExitMethodWithError("workerRepository.GetByID", err, "workerID", id)
		return nil, err
	}

	logger.ExitMethod("workerRepository.GetByID", "workerID", id)
	return worker, nil
}

func (r *workerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	logger.EnterMethod("workerRepository.Update", "workerID", worker.ID)

	query := `
		UPDATE workers SET
			name = $1,
			phone = $2,
			salary_type = $3,
			daily_rate = $4,
			monthly_salary = $5,
			updated_at = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		worker.Name, nullString(worker.Phone), worker.SalaryType,
		worker.DailyRate, worker.MonthlySalary, time.Now(), worker.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("workerRepository.Update", err, "workerID", worker.ID)
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	logger.ExitMethod("workerRepository.Update", "workerID", worker.ID)
	return nil
}

func (r *workerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	logger.EnterMethod("workerRepository.List")

	query := `
		SELECT id, name, COALESCE(phone, ''), salary_type, daily_rate, monthly_salary, created_at, updated_at
		FROM workers ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.ExitMethodWithError("workerRepository.List", err)
		return nil, err
	}
	defer rows.Close()

	workers := []domain.Worker{}
	for rows.Next() {
		var w domain.Worker
		err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.SalaryType, &w.DailyRate, &w.MonthlySalary, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			logger.ExitMethodWithError("workerRepository.List", err)
			return nil, err
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("workerRepository.List", "count", len(workers))
	return workers, nil
}
