package service

import (
	"context"
	"fmt"

	"fleetops-backend/internal/billing"
	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type billService struct {
	billRepo    repository.BillRepository
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
}

func NewBillService(
	billRepo repository.BillRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
) BillService {
	return &billService{
		billRepo:    billRepo,
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *billService) CreateBill(ctx context.Context, bill *domain.MonthlyVehicleBill) (*domain.MonthlyVehicleBill, error) {
	logger.EnterMethod("billService.CreateBill", "vehicleID", bill.VehicleID, "month", bill.Month, "year", bill.Year)

	if err := s.prepareBill(ctx, bill); err != nil {
		logger.ExitMethodWithError("billService.CreateBill", err, "vehicleID", bill.VehicleID)
		return nil, err
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		logger.ExitMethodWithError("billService.CreateBill", err, "vehicleID", bill.VehicleID)
		return nil, err
	}

	logger.ExitMethod("billService.CreateBill", "billID", bill.ID, "total", bill.TotalAmount)
	return bill, nil
}

// UpdateBill replaces the stored bill's entire item set with the submitted
// one and recomputes every aggregate from scratch. The bill's identity
// (vehicle, client, month, year) is taken from the stored row, never from
// the request.
func (s *billService) UpdateBill(ctx context.Context, id int32, bill *domain.MonthlyVehicleBill) (*domain.MonthlyVehicleBill, error) {
	logger.EnterMethod("billService.UpdateBill", "billID", id)

	existing, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", id)
		return nil, err
	}

	bill.ID = existing.ID
	bill.VehicleID = existing.VehicleID
	bill.ClientID = existing.ClientID
	bill.Month = existing.Month
	bill.Year = existing.Year

	if err := s.prepareBill(ctx, bill); err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", id)
		return nil, err
	}

	if err := s.billRepo.Replace(ctx, bill); err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", id)
		return nil, err
	}

	logger.ExitMethod("billService.UpdateBill", "billID", id, "total", bill.TotalAmount)
	return bill, nil
}

// prepareBill resolves the billing class from the vehicle, validates the
// header and items and computes the aggregates.
func (s *billService) prepareBill(ctx context.Context, bill *domain.MonthlyVehicleBill) error {
	if _, err := s.clientRepo.GetByID(ctx, bill.ClientID); err != nil {
		return fmt.Errorf("client %d: %w", bill.ClientID, err)
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, bill.VehicleID)
	if err != nil {
		return fmt.Errorf("vehicle %d: %w", bill.VehicleID, err)
	}
	bill.Class = vehicle.BillingClass

	if err := bill.Validate(); err != nil {
		return err
	}

	billing.ComputeBillAggregates(bill)
	return nil
}

func (s *billService) GetBill(ctx context.Context, id int32) (*domain.MonthlyVehicleBill, error) {
	return s.billRepo.GetByID(ctx, id)
}

func (s *billService) ListBills(ctx context.Context, month, year, vehicleID int32) ([]domain.MonthlyVehicleBill, error) {
	return s.billRepo.List(ctx, month, year, vehicleID)
}
