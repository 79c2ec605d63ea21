package service

import (
	"context"
	"fmt"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type registryService struct {
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
	workerRepo  repository.WorkerRepository
}

func NewRegistryService(
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	workerRepo repository.WorkerRepository,
) RegistryService {
	return &registryService{
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		workerRepo:  workerRepo,
	}
}

func (s *registryService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	logger.EnterMethod("registryService.CreateClient", "name", client.Name)

	if err := client.Validate(); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		logger.ExitMethodWithError("registryService.CreateClient", err, "name", client.Name)
		return nil, err
	}

	logger.ExitMethod("registryService.CreateClient", "clientID", client.ID)
	return client, nil
}

func (s *registryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *registryService) RecordClientPayment(ctx context.Context, payment *domain.ClientPayment) (*domain.ClientPayment, error) {
	logger.EnterMethod("registryService.RecordClientPayment", "clientID", payment.ClientID, "amount", payment.Amount)

	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.GetByID(ctx, payment.ClientID); err != nil {
		return nil, fmt.Errorf("client %d: %w", payment.ClientID, err)
	}
	if err := s.clientRepo.CreatePayment(ctx, payment); err != nil {
		logger.ExitMethodWithError("registryService.RecordClientPayment", err, "clientID", payment.ClientID)
		return nil, err
	}

	logger.ExitMethod("registryService.RecordClientPayment", "paymentID", payment.ID)
	return payment, nil
}

func (s *registryService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	logger.EnterMethod("registryService.CreateVehicle", "name", vehicle.Name, "variant", vehicle.Variant)

	if err := vehicle.Validate(); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		logger.ExitMethodWithError("registryService.CreateVehicle", err, "name", vehicle.Name)
		return nil, err
	}

	logger.ExitMethod("registryService.CreateVehicle", "vehicleID", vehicle.ID)
	return vehicle, nil
}

func (s *registryService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *registryService) RecordVehicleExpense(ctx context.Context, expense *domain.VehicleExpense) (*domain.VehicleExpense, error) {
	logger.EnterMethod("registryService.RecordVehicleExpense", "vehicleID", expense.VehicleID, "amount", expense.Amount)

	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.vehicleRepo.GetByID(ctx, expense.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %d: %w", expense.VehicleID, err)
	}
	if err := s.vehicleRepo.CreateExpense(ctx, expense); err != nil {
		logger.ExitMethodWithError("registryService.RecordVehicleExpense", err, "vehicleID", expense.VehicleID)
		return nil, err
	}

	logger.ExitMethod("registryService.RecordVehicleExpense", "expenseID", expense.ID)
	return expense, nil
}

func (s *registryService) CreateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	logger.EnterMethod("registryService.CreateWorker", "name", worker.Name, "salaryType", worker.SalaryType)

	if err := worker.Validate(); err != nil {
		return nil, err
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		logger.ExitMethodWithError("registryService.CreateWorker", err, "name", worker.Name)
		return nil, err
	}

	logger.ExitMethod("registryService.CreateWorker", "workerID", worker.ID)
	return worker, nil
}

// UpdateWorker changes rates going forward only. Statements already
// computed against past periods are re-derived with the current rate if
// recalculated; recorded payments never change.
func (s *registryService) UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	logger.EnterMethod("registryService.UpdateWorker", "workerID", worker.ID)

	if err := worker.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.workerRepo.GetByID(ctx, worker.ID); err != nil {
		return nil, fmt.Errorf("worker %d: %w", worker.ID, err)
	}
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		logger.ExitMethodWithError("registryService.UpdateWorker", err, "workerID", worker.ID)
		return nil, err
	}

	logger.ExitMethod("registryService.UpdateWorker", "workerID", worker.ID)
	return worker, nil
}

func (s *registryService) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return s.workerRepo.List(ctx)
}
