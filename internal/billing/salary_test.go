package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetops-backend/internal/domain"
)

func marks(present, half, absent int) []domain.AttendanceRecord {
	var records []domain.AttendanceRecord
	for i := 0; i < present; i++ {
		records = append(records, domain.AttendanceRecord{Status: domain.AttendancePresent})
	}
	for i := 0; i < half; i++ {
		records = append(records, domain.AttendanceRecord{Status: domain.AttendanceHalfDay})
	}
	for i := 0; i < absent; i++ {
		records = append(records, domain.AttendanceRecord{Status: domain.AttendanceAbsent})
	}
	return records
}

func TestDaysInPeriod(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		want    int32
		wantErr bool
	}{
		{"single day", "2025-06-15", "2025-06-15", 1, false},
		{"thirty days inclusive", "2025-06-01", "2025-06-30", 30, false},
		{"across month boundary", "2025-06-25", "2025-07-05", 11, false},
		{"reversed period", "2025-06-30", "2025-06-01", 0, true},
		{"malformed date", "2025-6-1", "2025-06-30", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysInPeriod(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntitlement_DailyRate(t *testing.T) {
	worker := &domain.Worker{SalaryType: domain.SalaryTypeDaily, DailyRate: 800}

	tests := []struct {
		name                  string
		present, half, absent int
		wantWorked            float64
		wantAmount            float64
	}{
		{"no attendance", 0, 0, 0, 0, 0},
		{"all present", 10, 0, 0, 10, 8000},
		{"mixed", 10, 3, 2, 11.5, 9200},
		{"only half days", 0, 5, 0, 2.5, 2000},
		{"absences earn nothing", 0, 0, 7, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Entitlement(worker, "2025-06-01", "2025-06-30", marks(tt.present, tt.half, tt.absent))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantWorked, got.WorkedDays)
			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, int32(tt.present), got.PresentDays)
			assert.Equal(t, int32(tt.half), got.HalfDays)
			assert.Equal(t, int32(tt.absent), got.AbsentDays)
		})
	}
}

func TestEntitlement_Monthly_ScenarioD(t *testing.T) {
	// monthly_salary=30000, period 1–30 (30 days inclusive),
	// 20 present + 4 half_day → worked=22 → (30000/30)*22 = 22000.00.
	worker := &domain.Worker{SalaryType: domain.SalaryTypeMonthly, MonthlySalary: 30000}

	got, err := Entitlement(worker, "2025-06-01", "2025-06-30", marks(20, 4, 6))
	assert.NoError(t, err)
	assert.Equal(t, 22.0, got.WorkedDays)
	assert.Equal(t, 22000.0, got.Amount)
}

func TestEntitlement_Monthly_FullProrationRoundTrips(t *testing.T) {
	// A full month of presence round-trips to the full salary.
	worker := &domain.Worker{SalaryType: domain.SalaryTypeMonthly, MonthlySalary: 30000}

	got, err := Entitlement(worker, "2025-06-01", "2025-06-30", marks(30, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, 30000.0, got.Amount)

	got, err = Entitlement(worker, "2025-06-01", "2025-06-30", nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got.Amount)
}

func TestEntitlement_Monthly_RoundsOnceAtTheEnd(t *testing.T) {
	// 10000/31*20 = 6451.612903... → 6451.61 with a single final rounding.
	worker := &domain.Worker{SalaryType: domain.SalaryTypeMonthly, MonthlySalary: 10000}

	got, err := Entitlement(worker, "2025-07-01", "2025-07-31", marks(20, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, 6451.61, got.Amount)
}

func TestEntitlement_Idempotent(t *testing.T) {
	worker := &domain.Worker{SalaryType: domain.SalaryTypeMonthly, MonthlySalary: 24500}
	records := marks(17, 5, 3)

	first, err := Entitlement(worker, "2025-05-01", "2025-05-31", records)
	assert.NoError(t, err)
	second, err := Entitlement(worker, "2025-05-01", "2025-05-31", records)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEntitlement_RejectsReversedPeriod(t *testing.T) {
	worker := &domain.Worker{SalaryType: domain.SalaryTypeMonthly, MonthlySalary: 30000}

	_, err := Entitlement(worker, "2025-06-30", "2025-06-01", marks(1, 0, 0))
	assert.Error(t, err)
}

func TestEntitlement_UnknownSalaryType(t *testing.T) {
	worker := &domain.Worker{SalaryType: "weekly"}

	_, err := Entitlement(worker, "2025-06-01", "2025-06-30", nil)
	assert.Error(t, err)
}
