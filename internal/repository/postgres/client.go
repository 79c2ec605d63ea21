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

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	logger.EnterMethod("clientRepository.Create", "name", client.Name)

	query := `
		INSERT INTO clients (name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		client.Name, nullString(client.Phone), nullString(client.Address), now, now,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("clientRepository.Create", err, "name", client.Name)
		return err
	}

	logger.ExitMethod("clientRepository.Create", "clientID", client.ID)
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	logger.EnterMethod("clientRepository.GetByID", "clientID", id)

	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(address, ''), created_at, updated_at
		FROM clients WHERE id = $1
	`

	client := &domain.Client{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID, &client.Name, &client.Phone, &client.Address, &client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		logger.ExitMethodWithError("clientRepository.GetByID", err, "clientID", id)
		return nil, err
	}

	logger.ExitMethod("clientRepository.GetByID", "clientID", id)
	return client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	logger.EnterMethod("clientRepository.List")

	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(address, ''), created_at, updated_at
		FROM clients ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.ExitMethodWithError("clientRepository.List", err)
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			logger.ExitMethodWithError("clientRepository.List", err)
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("clientRepository.List", "count", len(clients))
	return clients, nil
}

func (r *clientRepository) CreatePayment(ctx context.Context, payment *domain.ClientPayment) error {
	logger.EnterMethod("clientRepository.CreatePayment", "clientID", payment.ClientID, "amount", payment.Amount)

	query := `
		INSERT INTO client_payments (client_id, amount, paid_on, reference, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		payment.ClientID, payment.Amount, payment.PaidOn, payment.Reference,
		nullString(payment.Note), time.Now(),
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		logger.ExitMethodWithError("clientRepository.CreatePayment", err, "clientID", payment.ClientID)
		return err
	}

	logger.ExitMethod("clientRepository.CreatePayment", "paymentID", payment.ID)
	return nil
}

func (r *clientRepository) ListPayments(ctx context.Context, clientID int32, from, to string) ([]domain.ClientPayment, error) {
	logger.EnterMethod("clientRepository.ListPayments", "clientID", clientID)

	query := `
		SELECT id, client_id, amount, TO_CHAR(paid_on, 'YYYY-MM-DD'), reference, COALESCE(note, ''), created_at
		FROM client_payments
		WHERE client_id = $1 AND paid_on >= $2 AND paid_on <= $3
		ORDER BY paid_on ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, clientID, from, to)
	if err != nil {
		logger.ExitMethodWithError("clientRepository.ListPayments", err, "clientID", clientID)
		return nil, err
	}
	defer rows.Close()

	payments := []domain.ClientPayment{}
	for rows.Next() {
		var p domain.ClientPayment
		err := rows.Scan(&p.ID, &p.ClientID, &p.Amount, &p.PaidOn, &p.Reference, &p.Note, &p.CreatedAt)
		if err != nil {
			logger.ExitMethodWithError("clientRepository.ListPayments", err, "clientID", clientID)
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("clientRepository.ListPayments", "clientID", clientID, "count", len(payments))
	return payments, nil
}
