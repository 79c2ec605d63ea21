package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fleetops-backend/internal/domain"
)

func hourlyBillRequest() *domain.MonthlyVehicleBill {
	return &domain.MonthlyVehicleBill{
		VehicleID: 2,
		ClientID:  1,
		Month:     3,
		Year:      2026,
		Rate:      500,
		Items: []domain.BillLineItem{
			{ItemDate: "2026-03-01", StartMeter: 100, EndMeter: 108},
			{ItemDate: "2026-03-02", StartMeter: 108, EndMeter: 113.5},
		},
	}
}

func TestBillService_CreateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ClassFromVehicle", func(t *testing.T) {
		billRepo := new(MockBillRepo)
		clientRepo := new(MockClientRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBillService(billRepo, clientRepo, vehicleRepo)

		bill := hourlyBillRequest()
		bill.Class = domain.BillingClassDistance // ignored, vehicle decides
		clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1}, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(jcbVehicle(), nil)
		billRepo.On("Create", ctx, bill).Return(nil)

		created, err := svc.CreateBill(ctx, bill)
		assert.NoError(t, err)
		assert.Equal(t, domain.BillingClassHourly, created.Class)
		assert.Equal(t, 13.5, created.TotalDeltaSum)
		assert.Equal(t, 6750.0, created.TotalAmount)
	})

	t.Run("NegativeDeltaRejected", func(t *testing.T) {
		billRepo := new(MockBillRepo)
		clientRepo := new(MockClientRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBillService(billRepo, clientRepo, vehicleRepo)

		bill := hourlyBillRequest()
		bill.Items[1].EndMeter = 50
		clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1}, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(jcbVehicle(), nil)

		_, err := svc.CreateBill(ctx, bill)
		assert.Error(t, err)
		verrs, ok := domain.AsValidationErrors(err)
		assert.True(t, ok)
		assert.Equal(t, "items[1].end_meter", verrs[0].Field)
		billRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		billRepo := new(MockBillRepo)
		clientRepo := new(MockClientRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBillService(billRepo, clientRepo, vehicleRepo)

		bill := hourlyBillRequest()
		clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1}, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(nil, domain.ErrNotFound)

		_, err := svc.CreateBill(ctx, bill)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBillService_UpdateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("FullReplaceRecomputesAggregates", func(t *testing.T) {
		billRepo := new(MockBillRepo)
		clientRepo := new(MockClientRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBillService(billRepo, clientRepo, vehicleRepo)

		existing := hourlyBillRequest()
		existing.ID = 10
		existing.Class = domain.BillingClassHourly
		existing.TotalDeltaSum = 13.5
		existing.TotalAmount = 6750

		update := &domain.MonthlyVehicleBill{
			Rate: 500,
			Items: []domain.BillLineItem{
				{ItemDate: "2026-03-01", StartMeter: 100, EndMeter: 104},
			},
		}
		billRepo.On("GetByID", ctx, int32(10)).Return(existing, nil)
		clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1}, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(jcbVehicle(), nil)
		billRepo.On("Replace", ctx, update).Return(nil)

		updated, err := svc.UpdateBill(ctx, 10, update)
		assert.NoError(t, err)
		// Identity pinned to the stored row.
		assert.Equal(t, int32(10), updated.ID)
		assert.Equal(t, int32(2), updated.VehicleID)
		assert.Equal(t, int32(1), updated.ClientID)
		// Old items left no residue in the aggregates.
		assert.Equal(t, 4.0, updated.TotalDeltaSum)
		assert.Equal(t, 2000.0, updated.TotalAmount)
	})

	t.Run("MissingBill", func(t *testing.T) {
		billRepo := new(MockBillRepo)
		svc := NewBillService(billRepo, new(MockClientRepo), new(MockVehicleRepo))

		billRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateBill(ctx, 99, hourlyBillRequest())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBillService_ListBills(t *testing.T) {
	ctx := context.Background()

	billRepo := new(MockBillRepo)
	svc := NewBillService(billRepo, new(MockClientRepo), new(MockVehicleRepo))

	billRepo.On("List", ctx, int32(3), int32(2026), int32(0)).
		Return([]domain.MonthlyVehicleBill{{ID: 1}}, nil)

	bills, err := svc.ListBills(ctx, 3, 2026, 0)
	assert.NoError(t, err)
	assert.Len(t, bills, 1)
}
