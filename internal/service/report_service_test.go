package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/repository"
)

func TestReportService_ClientStatement(t *testing.T) {
	ctx := context.Background()

	reportRepo := new(MockReportRepo)
	jobRepo := new(MockJobRepo)
	clientRepo := new(MockClientRepo)
	svc := NewReportService(reportRepo, jobRepo, clientRepo, new(MockVehicleRepo))

	filter := repository.JobFilter{ClientID: 1, From: "2026-03-01", To: "2026-03-31"}
	clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1}, nil)
	jobRepo.On("List", ctx, filter).Return([]domain.Job{{ID: 1, TotalAmount: 4000}, {ID: 2, TotalAmount: 2700}}, nil)
	reportRepo.On("SumJobs", ctx, filter).Return(6700.0, nil)
	clientRepo.On("ListPayments", ctx, int32(1), "2026-03-01", "2026-03-31").
		Return([]domain.ClientPayment{{ID: 1, Amount: 5000}}, nil)
	reportRepo.On("SumClientPayments", ctx, int32(1), "2026-03-01", "2026-03-31").Return(5000.0, nil)

	statement, err := svc.ClientStatement(ctx, 1, "2026-03-01", "2026-03-31")
	assert.NoError(t, err)
	assert.Equal(t, 6700.0, statement.JobTotal)
	assert.Equal(t, 5000.0, statement.PaymentTotal)
	assert.Equal(t, 1700.0, statement.OutstandingBalance)
	assert.Len(t, statement.Jobs, 2)
	assert.Len(t, statement.Payments, 1)
}

func TestReportService_VehicleReport(t *testing.T) {
	ctx := context.Background()

	reportRepo := new(MockReportRepo)
	vehicleRepo := new(MockVehicleRepo)
	svc := NewReportService(reportRepo, new(MockJobRepo), new(MockClientRepo), vehicleRepo)

	vehicleRepo.On("GetByID", ctx, int32(2)).Return(jcbVehicle(), nil)
	reportRepo.On("SumJobs", ctx, repository.JobFilter{VehicleID: 2, From: "2026-03-01", To: "2026-03-31"}).
		Return(20000.0, nil)
	vehicleRepo.On("ListExpenses", ctx, int32(2), "2026-03-01", "2026-03-31").
		Return([]domain.VehicleExpense{{ID: 1, Amount: 3500}}, nil)
	reportRepo.On("SumVehicleExpenses", ctx, int32(2), "2026-03-01", "2026-03-31").Return(3500.0, nil)

	report, err := svc.VehicleReport(ctx, 2, "2026-03-01", "2026-03-31")
	assert.NoError(t, err)
	assert.Equal(t, 16500.0, report.NetIncome)
}

func TestReportService_MonthlyProfitLoss(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		svc := NewReportService(reportRepo, new(MockJobRepo), new(MockClientRepo), new(MockVehicleRepo))

		reportRepo.On("SumJobsByVariant", ctx, int32(3), int32(2026)).Return(50000.0, 30000.0, nil)
		reportRepo.On("SumVehicleExpensesByMonth", ctx, int32(3), int32(2026)).Return(12000.0, nil)
		reportRepo.On("SumSalaryPaymentsByMonth", ctx, int32(3), int32(2026)).Return(25000.0, nil)

		pl, err := svc.MonthlyProfitLoss(ctx, 3, 2026)
		assert.NoError(t, err)
		assert.Equal(t, 50000.0, pl.JCBIncome)
		assert.Equal(t, 30000.0, pl.LorryIncome)
		assert.Equal(t, 43000.0, pl.ProfitLoss)
	})

	t.Run("LossIsNegative", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		svc := NewReportService(reportRepo, new(MockJobRepo), new(MockClientRepo), new(MockVehicleRepo))

		reportRepo.On("SumJobsByVariant", ctx, int32(4), int32(2026)).Return(5000.0, 0.0, nil)
		reportRepo.On("SumVehicleExpensesByMonth", ctx, int32(4), int32(2026)).Return(8000.0, nil)
		reportRepo.On("SumSalaryPaymentsByMonth", ctx, int32(4), int32(2026)).Return(2000.0, nil)

		pl, err := svc.MonthlyProfitLoss(ctx, 4, 2026)
		assert.NoError(t, err)
		assert.Equal(t, -5000.0, pl.ProfitLoss)
	})

	t.Run("BadMonthRejected", func(t *testing.T) {
		svc := NewReportService(new(MockReportRepo), new(MockJobRepo), new(MockClientRepo), new(MockVehicleRepo))
		_, err := svc.MonthlyProfitLoss(ctx, 13, 2026)
		assert.Error(t, err)
	})
}

func TestReportService_DailyTotals(t *testing.T) {
	ctx := context.Background()

	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockJobRepo), new(MockClientRepo), new(MockVehicleRepo))

	reportRepo.On("DailyJobTotals", ctx, "2026-03-01", "2026-03-31").
		Return([]domain.DailyTotal{
			{Date: "2026-03-01", JobCount: 2, JobTotal: 6700},
			{Date: "2026-03-02", JobCount: 1, JobTotal: 2000},
		}, nil)

	totals, err := svc.DailyTotals(ctx, "2026-03-01", "2026-03-31")
	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, "2026-03-01", totals[0].Date)

	_, err = svc.DailyTotals(ctx, "2026-03-31", "2026-03-01")
	assert.Error(t, err)
}
