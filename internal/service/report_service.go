package service

import (
	"context"
	"fmt"

	"fleetops-backend/internal/billing"
	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"
)

type reportService struct {
	reportRepo  repository.ReportRepository
	jobRepo     repository.JobRepository
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
}

func NewReportService(
	reportRepo repository.ReportRepository,
	jobRepo repository.JobRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		jobRepo:     jobRepo,
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
	}
}

// ClientStatement nets the client's billed jobs against payments received
// over the range. Totals are sums of stored amounts; nothing is repriced.
func (s *reportService) ClientStatement(ctx context.Context, clientID int32, from, to string) (*domain.ClientStatement, error) {
	logger.EnterMethod("reportService.ClientStatement", "clientID", clientID, "from", from, "to", to)

	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("client %d: %w", clientID, err)
	}

	filter := repository.JobFilter{ClientID: clientID, From: from, To: to}
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		logger.ExitMethodWithError("reportService.ClientStatement", err, "clientID", clientID)
		return nil, err
	}
	jobTotal, err := s.reportRepo.SumJobs(ctx, filter)
	if err != nil {
		logger.ExitMethodWithError("reportService.ClientStatement", err, "clientID", clientID)
		return nil, err
	}
	payments, err := s.clientRepo.ListPayments(ctx, clientID, from, to)
	if err != nil {
		logger.ExitMethodWithError("reportService.ClientStatement", err, "clientID", clientID)
		return nil, err
	}
	paymentTotal, err := s.reportRepo.SumClientPayments(ctx, clientID, from, to)
	if err != nil {
		logger.ExitMethodWithError("reportService.ClientStatement", err, "clientID", clientID)
		return nil, err
	}

	statement := &domain.ClientStatement{
		ClientID:           clientID,
		From:               from,
		To:                 to,
		JobTotal:           jobTotal,
		PaymentTotal:       paymentTotal,
		OutstandingBalance: billing.Round2(jobTotal - paymentTotal),
		Jobs:               jobs,
		Payments:           payments,
	}

	logger.ExitMethod("reportService.ClientStatement", "clientID", clientID, "outstanding", statement.OutstandingBalance)
	return statement, nil
}

// VehicleReport nets billed jobs against expenses for one vehicle.
func (s *reportService) VehicleReport(ctx context.Context, vehicleID int32, from, to string) (*domain.VehicleReport, error) {
	logger.EnterMethod("reportService.VehicleReport", "vehicleID", vehicleID, "from", from, "to", to)

	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %d: %w", vehicleID, err)
	}

	jobTotal, err := s.reportRepo.SumJobs(ctx, repository.JobFilter{VehicleID: vehicleID, From: from, To: to})
	if err != nil {
		logger.ExitMethodWithError("reportService.VehicleReport", err, "vehicleID", vehicleID)
		return nil, err
	}
	expenses, err := s.vehicleRepo.ListExpenses(ctx, vehicleID, from, to)
	if err != nil {
		logger.ExitMethodWithError("reportService.VehicleReport", err, "vehicleID", vehicleID)
		return nil, err
	}
	expenseTotal, err := s.reportRepo.SumVehicleExpenses(ctx, vehicleID, from, to)
	if err != nil {
		logger.ExitMethodWithError("reportService.VehicleReport", err, "vehicleID", vehicleID)
		return nil, err
	}

	report := &domain.VehicleReport{
		VehicleID:    vehicleID,
		From:         from,
		To:           to,
		JobTotal:     jobTotal,
		ExpenseTotal: expenseTotal,
		NetIncome:    billing.Round2(jobTotal - expenseTotal),
		Expenses:     expenses,
	}

	logger.ExitMethod("reportService.VehicleReport", "vehicleID", vehicleID, "net", report.NetIncome)
	return report, nil
}

// MonthlyProfitLoss sums job income by variant and subtracts vehicle
// expenses and salary payments for the month.
func (s *reportService) MonthlyProfitLoss(ctx context.Context, month, year int32) (*domain.ProfitLoss, error) {
	logger.EnterMethod("reportService.MonthlyProfitLoss", "month", month, "year", year)

	if month < 1 || month > 12 {
		return nil, domain.ValidationErrors{}.Add("month", "must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, domain.ValidationErrors{}.Add("year", "must be a four-digit year")
	}

	jcbIncome, lorryIncome, err := s.reportRepo.SumJobsByVariant(ctx, month, year)
	if err != nil {
		logger.ExitMethodWithError("reportService.MonthlyProfitLoss", err, "month", month, "year", year)
		return nil, err
	}
	expenseTotal, err := s.reportRepo.SumVehicleExpensesByMonth(ctx, month, year)
	if err != nil {
		logger.ExitMethodWithError("reportService.MonthlyProfitLoss", err, "month", month, "year", year)
		return nil, err
	}
	salaryTotal, err := s.reportRepo.SumSalaryPaymentsByMonth(ctx, month, year)
	if err != nil {
		logger.ExitMethodWithError("reportService.MonthlyProfitLoss", err, "month", month, "year", year)
		return nil, err
	}

	pl := &domain.ProfitLoss{
		Month:        month,
		Year:         year,
		JCBIncome:    jcbIncome,
		LorryIncome:  lorryIncome,
		ExpenseTotal: expenseTotal,
		SalaryTotal:  salaryTotal,
		ProfitLoss:   billing.Round2(jcbIncome + lorryIncome - expenseTotal - salaryTotal),
	}

	logger.ExitMethod("reportService.MonthlyProfitLoss", "month", month, "year", year, "result", pl.ProfitLoss)
	return pl, nil
}

func (s *reportService) DailyTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.reportRepo.DailyJobTotals(ctx, from, to)
}

func (s *reportService) MonthlyTotals(ctx context.Context, year int32) ([]domain.MonthlyTotal, error) {
	if year < 2000 || year > 2100 {
		return nil, domain.ValidationErrors{}.Add("year", "must be a four-digit year")
	}
	return s.reportRepo.MonthlyJobTotals(ctx, year)
}

func validateRange(from, to string) error {
	var errs domain.ValidationErrors
	fromOK := domain.ValidDate(from)
	toOK := domain.ValidDate(to)
	if !fromOK {
		errs = errs.Add("from", "must be a calendar date in YYYY-MM-DD format")
	}
	if !toOK {
		errs = errs.Add("to", "must be a calendar date in YYYY-MM-DD format")
	}
	if fromOK && toOK {
		fromDate, _ := domain.ParseDate(from)
		toDate, _ := domain.ParseDate(to)
		if toDate.Before(fromDate) {
			errs = errs.Add("to", "must not be before from")
		}
	}
	return errs.OrNil()
}
