package domain

// ClientStatement nets billed jobs against payments received over a range.
type ClientStatement struct {
	ClientID           int32           `json:"client_id"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	JobTotal           float64         `json:"job_total"`
	PaymentTotal       float64         `json:"payment_total"`
	OutstandingBalance float64         `json:"outstanding_balance"`
	Jobs               []Job           `json:"jobs"`
	Payments           []ClientPayment `json:"payments"`
}

// VehicleReport nets billed jobs against expenses for one vehicle.
type VehicleReport struct {
	VehicleID    int32            `json:"vehicle_id"`
	From         string           `json:"from"`
	To           string           `json:"to"`
	JobTotal     float64          `json:"job_total"`
	ExpenseTotal float64          `json:"expense_total"`
	NetIncome    float64          `json:"net_income"`
	Expenses     []VehicleExpense `json:"expenses"`
}

// ProfitLoss is the monthly income-minus-outgoings figure.
type ProfitLoss struct {
	Month        int32   `json:"month"`
	Year         int32   `json:"year"`
	JCBIncome    float64 `json:"jcb_income"`
	LorryIncome  float64 `json:"lorry_income"`
	ExpenseTotal float64 `json:"expense_total"`
	SalaryTotal  float64 `json:"salary_total"`
	ProfitLoss   float64 `json:"profit_loss"`
}

// DailyTotal is one calendar-date bucket of job income, ordered ascending.
type DailyTotal struct {
	Date     string  `json:"date"`
	JobCount int32   `json:"job_count"`
	JobTotal float64 `json:"job_total"`
}

// MonthlyTotal is one (month, year) bucket of job income, ordered ascending.
type MonthlyTotal struct {
	Month    int32   `json:"month"`
	Year     int32   `json:"year"`
	JobCount int32   `json:"job_count"`
	JobTotal float64 `json:"job_total"`
}

// SalaryStatement is the attendance breakdown and entitlement for a worker
// over a period, with payments already made netted off.
type SalaryStatement struct {
	WorkerID    int32   `json:"worker_id"`
	PeriodFrom  string  `json:"period_from"`
	PeriodTo    string  `json:"period_to"`
	PresentDays int32   `json:"present_days"`
	HalfDays    int32   `json:"half_days"`
	AbsentDays  int32   `json:"absent_days"`
	WorkedDays  float64 `json:"worked_days"`
	Amount      float64 `json:"amount"`
	PaidTotal   float64 `json:"paid_total"`
	Balance     float64 `json:"balance"`
}
