package domain

import (
	"strconv"
	"time"
)

type BillingClass string

const (
	// BillingClassHourly bills a flat per-unit rate on every meter delta.
	BillingClassHourly BillingClass = "hourly"
	// BillingClassDistance bills a day rate with a bundled distance
	// allowance; only distance beyond the bundle is billed extra.
	BillingClassDistance BillingClass = "distance"
)

// MonthlyVehicleBill is one invoice per (vehicle, client, month, year).
// Aggregate fields always reflect the current item set; editing replaces
// the entire item set and recomputes them in one pass.
type MonthlyVehicleBill struct {
	ID        int32        `json:"id"`
	VehicleID int32        `json:"vehicle_id"`
	ClientID  int32        `json:"client_id"`
	Month     int32        `json:"month"`
	Year      int32        `json:"year"`
	Class     BillingClass `json:"billing_class"`

	// Rate is per hour-equivalent unit for hourly bills, per day for
	// distance bills.
	Rate              float64 `json:"rate"`
	PerDayKMAllowance float64 `json:"per_day_km_allowance,omitempty"`
	OvertimeRatePerKM float64 `json:"overtime_rate_per_km,omitempty"`
	// OvertimeKMs is the optional extra-distance input for hourly bills,
	// billed at the same rate.
	OvertimeKMs float64 `json:"overtime_kms,omitempty"`

	TotalDeltaSum    float64 `json:"total_delta_sum"`
	OvertimeDistance float64 `json:"overtime_distance,omitempty"`
	OvertimeAmount   float64 `json:"overtime_amount,omitempty"`
	TotalAmount      float64 `json:"total_amount"`

	Items     []BillLineItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BillLineItem is one day's meter reading on a monthly bill.
type BillLineItem struct {
	ID         int32   `json:"id"`
	BillID     int32   `json:"bill_id"`
	ItemDate   string  `json:"item_date"`
	StartMeter float64 `json:"start_meter"`
	EndMeter   float64 `json:"end_meter"`
	Delta      float64 `json:"delta"`
	LineAmount float64 `json:"line_amount,omitempty"`
}

// Validate checks the bill header and the submitted item set. A line item
// with end_meter < start_meter is rejected here: a negative meter delta is
// always a data-entry mistake, never clamped.
func (b *MonthlyVehicleBill) Validate() error {
	var errs ValidationErrors

	if b.VehicleID <= 0 {
		errs = errs.Add("vehicle_id", "vehicle is required")
	}
	if b.ClientID <= 0 {
		errs = errs.Add("client_id", "client is required")
	}
	if b.Month < 1 || b.Month > 12 {
		errs = errs.Add("month", "must be between 1 and 12")
	}
	if b.Year < 2000 || b.Year > 2100 {
		errs = errs.Add("year", "must be a four-digit year")
	}
	if b.Class != BillingClassHourly && b.Class != BillingClassDistance {
		errs = errs.Add("billing_class", "must be one of: hourly, distance")
	}
	if b.Rate <= 0 {
		errs = errs.Add("rate", "must be greater than zero")
	}

	switch b.Class {
	case BillingClassHourly:
		if b.OvertimeKMs < 0 {
			errs = errs.Add("overtime_kms", "must not be negative")
		}
	case BillingClassDistance:
		if b.PerDayKMAllowance < 0 {
			errs = errs.Add("per_day_km_allowance", "must not be negative")
		}
		if b.OvertimeRatePerKM < 0 {
			errs = errs.Add("overtime_rate_per_km", "must not be negative")
		}
	}

	if len(b.Items) == 0 {
		errs = errs.Add("items", "at least one line item is required")
	}
	for i, item := range b.Items {
		if !ValidDate(item.ItemDate) {
			errs = errs.Add(itemField(i, "item_date"), "must be a calendar date in YYYY-MM-DD format")
		}
		if item.StartMeter < 0 {
			errs = errs.Add(itemField(i, "start_meter"), "must not be negative")
		}
		if item.EndMeter < item.StartMeter {
			errs = errs.Add(itemField(i, "end_meter"), "must not be less than start_meter")
		}
	}

	return errs.OrNil()
}

func itemField(index int, name string) string {
	return "items[" + strconv.Itoa(index) + "]." + name
}
