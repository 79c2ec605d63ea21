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

const jobColumns = `
	id, client_id, vehicle_id, variant, rate_type, rate_amount,
	start_meter, end_meter, quantity, trips, distance_km, days,
	total_amount, status, TO_CHAR(job_date, 'YYYY-MM-DD'), COALESCE(notes, ''),
	created_at, updated_at
`

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	logger.EnterMethod("jobRepository.Create", "clientID", job.ClientID, "variant", job.Variant)

	query := `
		INSERT INTO jobs (
			client_id, vehicle_id, variant, rate_type, rate_amount,
			start_meter, end_meter, quantity, trips, distance_km, days,
			total_amount, status, job_date, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		job.ClientID, job.VehicleID, job.Variant, job.RateType, job.RateAmount,
		job.StartMeter, job.EndMeter, job.Quantity, job.Trips, job.DistanceKM, job.Days,
		job.TotalAmount, job.Status, job.JobDate, nullString(job.Notes), now, now,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("jobRepository.Create", err, "clientID", job.ClientID)
		return err
	}

	logger.ExitMethod("jobRepository.Create", "jobID", job.ID)
	return nil
}

func (r *jobRepository) CreateBatch(ctx context.Context, jobs []domain.Job) ([]domain.Job, error) {
	logger.EnterMethod("jobRepository.CreateBatch", "count", len(jobs))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO jobs (
			client_id, vehicle_id, variant, rate_type, rate_amount,
			start_meter, end_meter, quantity, trips, distance_km, days,
			total_amount, status, job_date, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	for i := range jobs {
		job := &jobs[i]
		err := tx.QueryRowContext(ctx, query,
			job.ClientID, job.VehicleID, job.Variant, job.RateType, job.RateAmount,
			job.StartMeter, job.EndMeter, job.Quantity, job.Trips, job.DistanceKM, job.Days,
			job.TotalAmount, job.Status, job.JobDate, nullString(job.Notes), now, now,
		).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
		if err != nil {
			logger.ExitMethodWithError("jobRepository.CreateBatch", err, "index", i)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("jobRepository.CreateBatch", err)
		return nil, err
	}

	logger.ExitMethod("jobRepository.CreateBatch", "count", len(jobs))
	return jobs, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	logger.EnterMethod("jobRepository.GetByID", "jobID", id)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job := &domain.Job{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.ClientID, &job.VehicleID, &job.Variant, &job.RateType, &job.RateAmount,
		&job.StartMeter, &job.EndMeter, &job.Quantity, &job.Trips, &job.DistanceKM, &job.Days,
		&job.TotalAmount, &job.Status, &job.JobDate, &job.Notes,
		&job.CreatedAt, &job.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		logger.ExitMethodWithError("jobRepository.GetByID", err, "jobID", id)
		return nil, err
	}

	logger.ExitMethod("jobRepository.GetByID", "jobID", id)
	return job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	logger.EnterMethod("jobRepository.Update", "jobID", job.ID, "status", job.Status)

	query := `
		UPDATE jobs SET
			end_meter = $1,
			quantity = $2,
			total_amount = $3,
			status = $4,
			notes = $5,
			updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		job.EndMeter, job.Quantity, job.TotalAmount, job.Status,
		nullString(job.Notes), time.Now(), job.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("jobRepository.Update", err, "jobID", job.ID)
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	logger.ExitMethod("jobRepository.Update", "jobID", job.ID)
	return nil
}

func (r *jobRepository) List(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	logger.EnterMethod("jobRepository.List", "clientID", filter.ClientID, "vehicleID", filter.VehicleID)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`

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
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
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

	query += " ORDER BY job_date ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError("jobRepository.List", err)
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		err := rows.Scan(
			&j.ID, &j.ClientID, &j.VehicleID, &j.Variant, &j.RateType, &j.RateAmount,
			&j.StartMeter, &j.EndMeter, &j.Quantity, &j.Trips, &j.DistanceKM, &j.Days,
			&j.TotalAmount, &j.Status, &j.JobDate, &j.Notes,
			&j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			logger.ExitMethodWithError("jobRepository.List", err)
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("jobRepository.List", "count", len(jobs))
	return jobs, nil
}
