package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetops-backend/internal/domain"
)

func f64(v float64) *float64 { return &v }
func i32(v int32) *int32     { return &v }

func TestCost(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		rate     float64
		want     float64
	}{
		{"zero quantity", 0, 500, 0},
		{"zero rate", 8, 0, 0},
		{"whole units", 8, 500, 4000},
		{"fractional quantity", 45.5, 120, 5460},
		{"fractional rate", 3, 12.5, 37.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cost(tt.quantity, tt.rate))
		})
	}
}

func TestCost_Monotonic(t *testing.T) {
	// Non-decreasing in each argument over a grid of valid inputs.
	quantities := []float64{0, 0.5, 1, 2, 10, 45.5}
	rates := []float64{0, 1, 120, 500}

	for _, rate := range rates {
		prev := -1.0
		for _, q := range quantities {
			got := Cost(q, rate)
			assert.GreaterOrEqual(t, got, prev, "rate=%v quantity=%v", rate, q)
			prev = got
		}
	}
	for _, q := range quantities {
		prev := -1.0
		for _, rate := range rates {
			got := Cost(q, rate)
			assert.GreaterOrEqual(t, got, prev, "quantity=%v rate=%v", q, rate)
			prev = got
		}
	}
}

func TestResolveQuantity(t *testing.T) {
	tests := []struct {
		name    string
		job     domain.Job
		want    float64
		wantErr bool
	}{
		{
			name: "jcb hourly uses entered quantity not meter delta",
			job: domain.Job{
				Variant:    domain.VariantJCB,
				RateType:   domain.RateTypeHourly,
				StartMeter: f64(100),
				EndMeter:   f64(108),
				Quantity:   f64(7.5),
			},
			want: 7.5,
		},
		{
			name: "jcb daily uses entered day count",
			job: domain.Job{
				Variant:  domain.VariantJCB,
				RateType: domain.RateTypeDaily,
				Quantity: f64(3),
			},
			want: 3,
		},
		{
			name: "lorry per_trip uses trip count",
			job: domain.Job{
				Variant:  domain.VariantLorry,
				RateType: domain.RateTypePerTrip,
				Trips:    i32(12),
			},
			want: 12,
		},
		{
			name: "lorry per_km uses distance",
			job: domain.Job{
				Variant:    domain.VariantLorry,
				RateType:   domain.RateTypePerKM,
				DistanceKM: f64(45.5),
			},
			want: 45.5,
		},
		{
			name: "lorry per_day uses day count",
			job: domain.Job{
				Variant:  domain.VariantLorry,
				RateType: domain.RateTypePerDay,
				Days:     f64(26),
			},
			want: 26,
		},
		{
			name:    "jcb without quantity fails",
			job:     domain.Job{Variant: domain.VariantJCB, RateType: domain.RateTypeHourly},
			wantErr: true,
		},
		{
			name:    "lorry per_km without distance fails",
			job:     domain.Job{Variant: domain.VariantLorry, RateType: domain.RateTypePerKM},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveQuantity(&tt.job)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceJob_ScenarioA(t *testing.T) {
	// JCB job, hourly, start=100, end=108, rate=500 → quantity=8, total=4000.
	quantity, ok := SuggestedHours(f64(100), f64(108))
	assert.True(t, ok)
	assert.Equal(t, 8.0, quantity)

	job := &domain.Job{
		Variant:    domain.VariantJCB,
		RateType:   domain.RateTypeHourly,
		RateAmount: 500,
		StartMeter: f64(100),
		EndMeter:   f64(108),
		Quantity:   &quantity,
	}
	assert.NoError(t, PriceJob(job))
	assert.Equal(t, 4000.0, job.TotalAmount)
}

func TestPriceJob_ScenarioB(t *testing.T) {
	// Lorry job, per_km, distance=45.5, rate=120 → total=5460.00.
	job := &domain.Job{
		Variant:    domain.VariantLorry,
		RateType:   domain.RateTypePerKM,
		RateAmount: 120,
		DistanceKM: f64(45.5),
	}
	assert.NoError(t, PriceJob(job))
	assert.Equal(t, 5460.0, job.TotalAmount)
}

func TestPriceJob_OverwritesCallerTotal(t *testing.T) {
	job := &domain.Job{
		Variant:     domain.VariantLorry,
		RateType:    domain.RateTypePerTrip,
		RateAmount:  700,
		Trips:       i32(4),
		TotalAmount: 99999, // caller-supplied, must be ignored
	}
	assert.NoError(t, PriceJob(job))
	assert.Equal(t, 2800.0, job.TotalAmount)
}

func TestSuggestedHours(t *testing.T) {
	_, ok := SuggestedHours(nil, f64(108))
	assert.False(t, ok, "no suggestion without start meter")

	_, ok = SuggestedHours(f64(100), nil)
	assert.False(t, ok, "no suggestion without end meter")

	_, ok = SuggestedHours(f64(108), f64(108))
	assert.False(t, ok, "no suggestion when meters are equal")

	_, ok = SuggestedHours(f64(110), f64(108))
	assert.False(t, ok, "no suggestion when end meter is behind")

	hours, ok := SuggestedHours(f64(100.5), f64(108))
	assert.True(t, ok)
	assert.Equal(t, 7.5, hours)
}
