package domain

import "time"

type SalaryType string

const (
	SalaryTypeDaily   SalaryType = "daily"
	SalaryTypeMonthly SalaryType = "monthly"
)

// Worker is paid by attendance. Exactly one of DailyRate or MonthlySalary
// is meaningful at any time, selected by SalaryType.
type Worker struct {
	ID            int32      `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	SalaryType    SalaryType `json:"salary_type"`
	DailyRate     float64    `json:"daily_rate,omitempty"`
	MonthlySalary float64    `json:"monthly_salary,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (w *Worker) Validate() error {
	var errs ValidationErrors

	if w.Name == "" {
		errs = errs.Add("name", "name is required")
	}
	switch w.SalaryType {
	case SalaryTypeDaily:
		if w.DailyRate <= 0 {
			errs = errs.Add("daily_rate", "must be greater than zero")
		}
	case SalaryTypeMonthly:
		if w.MonthlySalary <= 0 {
			errs = errs.Add("monthly_salary", "must be greater than zero")
		}
	default:
		errs = errs.Add("salary_type", "must be one of: daily, monthly")
	}

	return errs.OrNil()
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

// AttendanceRecord is one mark per (worker, date). A second mark for the
// same worker and date overwrites the first, never duplicates it.
type AttendanceRecord struct {
	ID             int32            `json:"id"`
	WorkerID       int32            `json:"worker_id"`
	AttendanceDate string           `json:"attendance_date"`
	Status         AttendanceStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (a *AttendanceRecord) Validate() error {
	var errs ValidationErrors

	if a.WorkerID <= 0 {
		errs = errs.Add("worker_id", "worker is required")
	}
	if !ValidDate(a.AttendanceDate) {
		errs = errs.Add("attendance_date", "must be a calendar date in YYYY-MM-DD format")
	}
	switch a.Status {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay:
	default:
		errs = errs.Add("status", "must be one of: present, absent, half_day")
	}

	return errs.OrNil()
}

// SalaryPayment records an amount actually paid for a period span; it is
// distinct from the entitlement computed on demand.
type SalaryPayment struct {
	ID         int32     `json:"id"`
	WorkerID   int32     `json:"worker_id"`
	Amount     float64   `json:"amount"`
	PeriodFrom string    `json:"period_from"`
	PeriodTo   string    `json:"period_to"`
	PaidOn     string    `json:"paid_on"`
	Reference  string    `json:"reference"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *SalaryPayment) Validate() error {
	errs := validatePeriod(p.WorkerID, p.PeriodFrom, p.PeriodTo)

	if p.Amount <= 0 {
		errs = errs.Add("amount", "must be greater than zero")
	}
	if p.PaidOn != "" && !ValidDate(p.PaidOn) {
		errs = errs.Add("paid_on", "must be a calendar date in YYYY-MM-DD format")
	}

	return errs.OrNil()
}

// SalaryPeriod identifies a worker and an inclusive date range for an
// entitlement calculation.
type SalaryPeriod struct {
	WorkerID   int32  `json:"worker_id"`
	PeriodFrom string `json:"period_from"`
	PeriodTo   string `json:"period_to"`
}

func (s *SalaryPeriod) Validate() error {
	return validatePeriod(s.WorkerID, s.PeriodFrom, s.PeriodTo).OrNil()
}

func validatePeriod(workerID int32, from, to string) ValidationErrors {
	var errs ValidationErrors

	if workerID <= 0 {
		errs = errs.Add("worker_id", "worker is required")
	}
	fromOK := ValidDate(from)
	toOK := ValidDate(to)
	if !fromOK {
		errs = errs.Add("period_from", "must be a calendar date in YYYY-MM-DD format")
	}
	if !toOK {
		errs = errs.Add("period_to", "must be a calendar date in YYYY-MM-DD format")
	}
	if fromOK && toOK {
		fromDate, _ := ParseDate(from)
		toDate, _ := ParseDate(to)
		if toDate.Before(fromDate) {
			errs = errs.Add("period_to", "must not be before period_from")
		}
	}
	return errs
}
