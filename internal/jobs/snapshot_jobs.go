package jobs

import (
	"context"
	"time"

	"fleetops-backend/internal/logger"
)

// SnapshotClientBalances freezes each client's running balance at month end.
// The snapshot sums stored job totals against stored payments up to the end
// of the month; nothing is repriced. The job runs early on the 1st, so the
// row is labeled with the month that just closed.
func (jr *JobRunner) SnapshotClientBalances() {
	jr.runWithRecovery("SnapshotClientBalances", func() {
		ctx := context.Background()

		snapshotMonth := time.Now().UTC().AddDate(0, -1, 0).Format("2006-01")

		query := `
			INSERT INTO client_balance_snapshots (client_id, snapshot_month, job_total, payment_total, outstanding_balance, snapshot_at)
			SELECT c.id,
			       $1,
			       COALESCE(j.total, 0),
			       COALESCE(p.total, 0),
			       COALESCE(j.total, 0) - COALESCE(p.total, 0),
			       NOW()
			FROM clients c
			LEFT JOIN (
				SELECT client_id, SUM(total_amount) AS total FROM jobs GROUP BY client_id
			) j ON j.client_id = c.id
			LEFT JOIN (
				SELECT client_id, SUM(amount) AS total FROM client_payments GROUP BY client_id
			) p ON p.client_id = c.id
			ON CONFLICT (client_id, snapshot_month) DO NOTHING
		`

		result, err := jr.db.ExecContext(ctx, query, snapshotMonth)
		if err != nil {
			logger.Error("Failed to snapshot client balances", "error", err)
			return
		}

		rowsAffected, _ := result.RowsAffected()
		logger.Info("Client balance snapshots taken",
			"count", rowsAffected,
			"snapshot_month", snapshotMonth)
	})
}

// SnapshotProfitLoss freezes the previous month's profit and loss figure.
// Rerunning the job overwrites the row for that month with the latest
// aggregates, so a late-entered expense still lands in the snapshot.
func (jr *JobRunner) SnapshotProfitLoss() {
	jr.runWithRecovery("SnapshotProfitLoss", func() {
		ctx := context.Background()

		lastMonth := time.Now().UTC().AddDate(0, -1, 0)
		month := int32(lastMonth.Month())
		year := int32(lastMonth.Year())

		pl, err := jr.services.Report.MonthlyProfitLoss(ctx, month, year)
		if err != nil {
			logger.Error("Failed to compute profit and loss",
				"month", month,
				"year", year,
				"error", err)
			return
		}

		query := `
			INSERT INTO profit_loss_snapshots (month, year, jcb_income, lorry_income, expense_total, salary_total, profit_loss, snapshot_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (month, year) DO UPDATE SET
				jcb_income = EXCLUDED.jcb_income,
				lorry_income = EXCLUDED.lorry_income,
				expense_total = EXCLUDED.expense_total,
				salary_total = EXCLUDED.salary_total,
				profit_loss = EXCLUDED.profit_loss,
				snapshot_at = EXCLUDED.snapshot_at
		`

		_, err = jr.db.ExecContext(ctx, query,
			pl.Month, pl.Year,
			pl.JCBIncome, pl.LorryIncome,
			pl.ExpenseTotal, pl.SalaryTotal,
			pl.ProfitLoss)
		if err != nil {
			logger.Error("Failed to store profit and loss snapshot",
				"month", month,
				"year", year,
				"error", err)
			return
		}

		logger.Info("Profit and loss snapshot taken",
			"month", month,
			"year", year,
			"profit_loss", pl.ProfitLoss)
	})
}
