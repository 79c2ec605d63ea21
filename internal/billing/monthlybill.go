package billing

import "fleetops-backend/internal/domain"

// ComputeBillAggregates recomputes every aggregate on the bill from its
// current item set, in one pass. Line deltas and (for hourly bills) line
// amounts are written back onto the items. Callers replace the whole item
// set before calling; there is no incremental patch path, so the aggregates
// can never reflect a stale partial state.
func ComputeBillAggregates(bill *domain.MonthlyVehicleBill) {
	switch bill.Class {
	case domain.BillingClassDistance:
		computeDistanceBill(bill)
	default:
		computeHourlyBill(bill)
	}
}

// computeHourlyBill: a flat per-unit sum with no allowance concept. The
// optional overtime kilometres input is billed at the same rate.
func computeHourlyBill(bill *domain.MonthlyVehicleBill) {
	var deltaSum, amount float64
	for i := range bill.Items {
		item := &bill.Items[i]
		item.Delta = item.EndMeter - item.StartMeter
		item.LineAmount = Round2(item.Delta * bill.Rate)
		deltaSum += item.Delta
		amount += item.Delta * bill.Rate
	}
	if bill.OvertimeKMs > 0 {
		amount += bill.OvertimeKMs * bill.Rate
	}

	bill.TotalDeltaSum = Round2(deltaSum)
	bill.OvertimeDistance = 0
	bill.OvertimeAmount = 0
	bill.TotalAmount = Round2(amount)
}

// computeDistanceBill: the operator is paid a flat day rate covering a
// bundled distance allowance; only distance beyond the bundle is billed
// extra. Running under the allowance never produces a credit.
func computeDistanceBill(bill *domain.MonthlyVehicleBill) {
	days := float64(len(bill.Items))

	var totalDistance float64
	for i := range bill.Items {
		item := &bill.Items[i]
		item.Delta = item.EndMeter - item.StartMeter
		item.LineAmount = 0
		totalDistance += item.Delta
	}

	baseAmount := days * bill.Rate
	allowedDistance := days * bill.PerDayKMAllowance
	overtimeDistance := totalDistance - allowedDistance
	if overtimeDistance < 0 {
		overtimeDistance = 0
	}
	overtimeAmount := overtimeDistance * bill.OvertimeRatePerKM

	bill.TotalDeltaSum = Round2(totalDistance)
	bill.OvertimeDistance = Round2(overtimeDistance)
	bill.OvertimeAmount = Round2(overtimeAmount)
	bill.TotalAmount = Round2(baseAmount + overtimeAmount)
}
