package domain

import "time"

// Vehicle is a fleet unit. Variant fixes which job rate types apply to it;
// BillingClass selects the monthly-bill formula.
type Vehicle struct {
	ID           int32        `json:"id"`
	Name         string       `json:"name"`
	Registration string       `json:"registration"`
	Variant      Variant      `json:"variant"`
	BillingClass BillingClass `json:"billing_class"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (v *Vehicle) Validate() error {
	var errs ValidationErrors
	if v.Name == "" {
		errs = errs.Add("name", "name is required")
	}
	if v.Variant != VariantJCB && v.Variant != VariantLorry {
		errs = errs.Add("variant", "must be one of: jcb, lorry")
	}
	if v.BillingClass != BillingClassHourly && v.BillingClass != BillingClassDistance {
		errs = errs.Add("billing_class", "must be one of: hourly, distance")
	}
	return errs.OrNil()
}

// VehicleExpense is operating cost attributed to one vehicle, netted
// against billed jobs in vehicle reports and the monthly P&L.
type VehicleExpense struct {
	ID        int32     `json:"id"`
	VehicleID int32     `json:"vehicle_id"`
	Amount    float64   `json:"amount"`
	SpentOn   string    `json:"spent_on"`
	Category  string    `json:"category"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *VehicleExpense) Validate() error {
	var errs ValidationErrors
	if e.VehicleID <= 0 {
		errs = errs.Add("vehicle_id", "vehicle is required")
	}
	if e.Amount <= 0 {
		errs = errs.Add("amount", "must be greater than zero")
	}
	if !ValidDate(e.SpentOn) {
		errs = errs.Add("spent_on", "must be a calendar date in YYYY-MM-DD format")
	}
	return errs.OrNil()
}
