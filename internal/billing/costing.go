// Package billing holds the deterministic money rules: job costing,
// monthly vehicle bill aggregates, and attendance-prorated salaries.
// Everything here is a pure function of its inputs; persistence and
// validation live with the callers.
package billing

import (
	"fmt"
	"math"

	"fleetops-backend/internal/domain"
)

// Round2 rounds to 2 decimal places with standard rounding, not truncation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cost is the single costing rule: quantity times rate. Inputs are assumed
// finite and non-negative; rejecting anything else is the caller's job.
func Cost(quantity, rate float64) float64 {
	return quantity * rate
}

// ResolveQuantity picks the billable quantity for a job from its variant
// and rate type. Each case of the closed set owns its quantity field; an
// unpopulated field for the selected case is an error.
func ResolveQuantity(job *domain.Job) (float64, error) {
	switch job.Variant {
	case domain.VariantJCB:
		// Hourly and daily JCB jobs both bill the user-entered quantity.
		// The meter delta is only a live suggestion, see SuggestedHours.
		if job.Quantity == nil {
			return 0, fmt.Errorf("jcb job has no quantity")
		}
		return *job.Quantity, nil
	case domain.VariantLorry:
		switch job.RateType {
		case domain.RateTypePerTrip:
			if job.Trips == nil {
				return 0, fmt.Errorf("per_trip job has no trip count")
			}
			return float64(*job.Trips), nil
		case domain.RateTypePerKM:
			if job.DistanceKM == nil {
				return 0, fmt.Errorf("per_km job has no distance")
			}
			return *job.DistanceKM, nil
		case domain.RateTypePerDay:
			if job.Days == nil {
				return 0, fmt.Errorf("per_day job has no day count")
			}
			return *job.Days, nil
		}
	}
	return 0, fmt.Errorf("no quantity rule for variant %q rate type %q", job.Variant, job.RateType)
}

// PriceJob resolves the job's quantity and writes the computed total onto
// the job, overwriting whatever a caller may have supplied.
func PriceJob(job *domain.Job) error {
	quantity, err := ResolveQuantity(job)
	if err != nil {
		return err
	}
	job.TotalAmount = Round2(Cost(quantity, job.RateAmount))
	return nil
}

// SuggestedHours returns the meter delta as a quantity suggestion for an
// hourly JCB job. The suggestion only exists when both meters are present
// and the end meter is ahead of the start; the entered quantity stays
// authoritative at submission time.
func SuggestedHours(startMeter, endMeter *float64) (float64, bool) {
	if startMeter == nil || endMeter == nil {
		return 0, false
	}
	if *endMeter <= *startMeter {
		return 0, false
	}
	return *endMeter - *startMeter, true
}
