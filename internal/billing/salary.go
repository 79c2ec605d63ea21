package billing

import (
	"fmt"

	"fleetops-backend/internal/domain"
)

// SalaryBreakdown reports the attendance counts behind an entitlement so a
// caller can display or audit them before committing a payment.
type SalaryBreakdown struct {
	PresentDays int32   `json:"present_days"`
	HalfDays    int32   `json:"half_days"`
	AbsentDays  int32   `json:"absent_days"`
	WorkedDays  float64 `json:"worked_days"`
	Amount      float64 `json:"amount"`
}

// SummarizeAttendance counts the attendance marks by status.
func SummarizeAttendance(records []domain.AttendanceRecord) (present, half, absent int32) {
	for _, rec := range records {
		switch rec.Status {
		case domain.AttendancePresent:
			present++
		case domain.AttendanceHalfDay:
			half++
		case domain.AttendanceAbsent:
			absent++
		}
	}
	return present, half, absent
}

// DaysInPeriod returns the inclusive day count of [from, to].
func DaysInPeriod(from, to string) (int32, error) {
	fromDate, err := domain.ParseDate(from)
	if err != nil {
		return 0, fmt.Errorf("invalid period_from: %w", err)
	}
	toDate, err := domain.ParseDate(to)
	if err != nil {
		return 0, fmt.Errorf("invalid period_to: %w", err)
	}
	if toDate.Before(fromDate) {
		return 0, fmt.Errorf("period_to %s is before period_from %s", to, from)
	}
	return int32(toDate.Sub(fromDate).Hours()/24) + 1, nil
}

// Entitlement converts a worker's attendance marks over [from, to] into
// the earned wage. Daily workers earn worked days times the daily rate;
// monthly workers earn the monthly salary prorated over the period's
// calendar days. The proration divides before multiplying and rounds once
// at the end; reordering those steps changes results by cents.
//
// The calculation is pure and idempotent; recording a payment is a
// separate step left to the caller.
func Entitlement(worker *domain.Worker, from, to string, records []domain.AttendanceRecord) (SalaryBreakdown, error) {
	present, half, absent := SummarizeAttendance(records)
	workedDays := float64(present) + float64(half)*0.5

	breakdown := SalaryBreakdown{
		PresentDays: present,
		HalfDays:    half,
		AbsentDays:  absent,
		WorkedDays:  workedDays,
	}

	switch worker.SalaryType {
	case domain.SalaryTypeDaily:
		breakdown.Amount = Round2(workedDays * worker.DailyRate)
	case domain.SalaryTypeMonthly:
		totalDays, err := DaysInPeriod(from, to)
		if err != nil {
			return SalaryBreakdown{}, err
		}
		// totalDays >= 1 by construction; guarded anyway so a bad caller
		// can never divide by zero.
		if totalDays < 1 {
			return SalaryBreakdown{}, fmt.Errorf("period [%s, %s] has no days", from, to)
		}
		breakdown.Amount = Round2(worker.MonthlySalary / float64(totalDays) * workedDays)
	default:
		return SalaryBreakdown{}, fmt.Errorf("unknown salary type %q", worker.SalaryType)
	}

	return breakdown, nil
}
