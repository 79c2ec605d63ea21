package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/repository"
)

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) CreateBatch(ctx context.Context, jobs []domain.Job) ([]domain.Job, error) {
	args := m.Called(ctx, jobs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockJobRepo) List(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

// MockBillRepo
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) Create(ctx context.Context, bill *domain.MonthlyVehicleBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockBillRepo) Replace(ctx context.Context, bill *domain.MonthlyVehicleBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockBillRepo) GetByID(ctx context.Context, id int32) (*domain.MonthlyVehicleBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyVehicleBill), args.Error(1)
}
func (m *MockBillRepo) List(ctx context.Context, month, year, vehicleID int32) ([]domain.MonthlyVehicleBill, error) {
	args := m.Called(ctx, month, year, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyVehicleBill), args.Error(1)
}

// MockWorkerRepo
type MockWorkerRepo struct {
	mock.Mock
}

func (m *MockWorkerRepo) Create(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerRepo) GetByID(ctx context.Context, id int32) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerRepo) Update(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerRepo) List(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

// MockAttendanceRepo
type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) Upsert(ctx context.Context, record *domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockAttendanceRepo) ListByWorker(ctx context.Context, workerID int32, from, to string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, workerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}
func (m *MockAttendanceRepo) WithTx(tx *sql.Tx) repository.AttendanceRepository {
	return m
}

// MockSalaryPaymentRepo
type MockSalaryPaymentRepo struct {
	mock.Mock
}

func (m *MockSalaryPaymentRepo) Create(ctx context.Context, payment *domain.SalaryPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockSalaryPaymentRepo) ListByWorker(ctx context.Context, workerID int32, from, to string) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx, workerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryPayment), args.Error(1)
}
func (m *MockSalaryPaymentRepo) SumForPeriod(ctx context.Context, workerID int32, from, to string) (float64, error) {
	args := m.Called(ctx, workerID, from, to)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockSalaryPaymentRepo) WithTx(tx *sql.Tx) repository.SalaryPaymentRepository {
	return m
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) CreatePayment(ctx context.Context, payment *domain.ClientPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockClientRepo) ListPayments(ctx context.Context, clientID int32, from, to string) ([]domain.ClientPayment, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientPayment), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) CreateExpense(ctx context.Context, expense *domain.VehicleExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListExpenses(ctx context.Context, vehicleID int32, from, to string) ([]domain.VehicleExpense, error) {
	args := m.Called(ctx, vehicleID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleExpense), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) SumJobs(ctx context.Context, filter repository.JobFilter) (float64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockReportRepo) SumJobsByVariant(ctx context.Context, month, year int32) (float64, float64, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}
func (m *MockReportRepo) SumClientPayments(ctx context.Context, clientID int32, from, to string) (float64, error) {
	args := m.Called(ctx, clientID, from, to)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockReportRepo) SumVehicleExpenses(ctx context.Context, vehicleID int32, from, to string) (float64, error) {
	args := m.Called(ctx, vehicleID, from, to)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockReportRepo) SumVehicleExpensesByMonth(ctx context.Context, month, year int32) (float64, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockReportRepo) SumSalaryPaymentsByMonth(ctx context.Context, month, year int32) (float64, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockReportRepo) DailyJobTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTotal), args.Error(1)
}
func (m *MockReportRepo) MonthlyJobTotals(ctx context.Context, year int32) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}
