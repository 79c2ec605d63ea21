package domain

import "time"

type Variant string

const (
	VariantJCB   Variant = "jcb"
	VariantLorry Variant = "lorry"
)

type RateType string

const (
	RateTypeHourly  RateType = "hourly"
	RateTypeDaily   RateType = "daily"
	RateTypePerTrip RateType = "per_trip"
	RateTypePerKM   RateType = "per_km"
	RateTypePerDay  RateType = "per_day"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusPaid      JobStatus = "paid"
)

// rateTypesByVariant is the closed set of valid (variant, rate_type) pairs.
var rateTypesByVariant = map[Variant][]RateType{
	VariantJCB:   {RateTypeHourly, RateTypeDaily},
	VariantLorry: {RateTypePerTrip, RateTypePerKM, RateTypePerDay},
}

// ValidRateType reports whether rt is a legal rate type for v.
func ValidRateType(v Variant, rt RateType) bool {
	for _, candidate := range rateTypesByVariant[v] {
		if candidate == rt {
			return true
		}
	}
	return false
}

// Job is a priced unit of work for a client. TotalAmount is always computed
// by the costing engine, never accepted from a caller.
type Job struct {
	ID         int32    `json:"id"`
	ClientID   int32    `json:"client_id"`
	VehicleID  int32    `json:"vehicle_id"`
	Variant    Variant  `json:"variant"`
	RateType   RateType `json:"rate_type"`
	RateAmount float64  `json:"rate_amount"`

	// JCB quantity fields. Quantity is the user-entered hours or days; the
	// meter delta is only ever a suggestion for it, never authoritative.
	StartMeter *float64 `json:"start_meter,omitempty"`
	EndMeter   *float64 `json:"end_meter,omitempty"`
	Quantity   *float64 `json:"quantity,omitempty"`

	// Lorry quantity fields, exactly one populated per rate type.
	Trips      *int32   `json:"trips,omitempty"`
	DistanceKM *float64 `json:"distance_km,omitempty"`
	Days       *float64 `json:"days,omitempty"`

	TotalAmount float64   `json:"total_amount"`
	Status      JobStatus `json:"status"`
	JobDate     string    `json:"job_date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the job's fields for creation. The closed variant set,
// the per-variant rate types and the non-negative numeric constraints are
// all enforced here, before any costing runs.
func (j *Job) Validate() error {
	var errs ValidationErrors

	if j.ClientID <= 0 {
		errs = errs.Add("client_id", "client is required")
	}
	if j.VehicleID <= 0 {
		errs = errs.Add("vehicle_id", "vehicle is required")
	}
	if j.Variant != VariantJCB && j.Variant != VariantLorry {
		errs = errs.Add("variant", "must be one of: jcb, lorry")
		return errs
	}
	if !ValidRateType(j.Variant, j.RateType) {
		errs = errs.Add("rate_type", "not a valid rate type for variant "+string(j.Variant))
		return errs
	}
	if j.RateAmount <= 0 {
		errs = errs.Add("rate_amount", "must be greater than zero")
	}
	if !ValidDate(j.JobDate) {
		errs = errs.Add("job_date", "must be a calendar date in YYYY-MM-DD format")
	}

	switch j.Variant {
	case VariantJCB:
		if j.Quantity == nil || *j.Quantity <= 0 {
			errs = errs.Add("quantity", "must be greater than zero")
		}
		if j.StartMeter != nil && *j.StartMeter < 0 {
			errs = errs.Add("start_meter", "must not be negative")
		}
		if j.EndMeter != nil {
			if j.StartMeter == nil {
				errs = errs.Add("end_meter", "requires start_meter")
			} else if *j.EndMeter < *j.StartMeter {
				errs = errs.Add("end_meter", "must not be less than start_meter")
			}
		}
	case VariantLorry:
		switch j.RateType {
		case RateTypePerTrip:
			if j.Trips == nil || *j.Trips <= 0 {
				errs = errs.Add("trips", "must be greater than zero")
			}
		case RateTypePerKM:
			if j.DistanceKM == nil || *j.DistanceKM <= 0 {
				errs = errs.Add("distance_km", "must be greater than zero")
			}
		case RateTypePerDay:
			if j.Days == nil || *j.Days <= 0 {
				errs = errs.Add("days", "must be greater than zero")
			}
		}
	}

	return errs.OrNil()
}

// CanTransitionTo reports whether the forward-only lifecycle permits moving
// to next. No backward transition exists.
func (j *Job) CanTransitionTo(next JobStatus) bool {
	switch j.Status {
	case JobStatusPending:
		return next == JobStatusCompleted
	case JobStatusCompleted:
		return next == JobStatusPaid
	default:
		return false
	}
}
