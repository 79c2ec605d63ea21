package scheduler

import (
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"

	"fleetops-backend/internal/config"
	"fleetops-backend/internal/jobs"
)

func defaultedConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Database.Host = "localhost"
	cfg.Database.User = "fleetops"
	cfg.Database.Database = "fleetops"
	err := cfg.Validate()
	assert.NoError(t, err)
	return cfg
}

func TestDefaultScheduleExpressionsParse(t *testing.T) {
	cfg := defaultedConfig(t)

	// Same field set the scheduler runs with (seconds precision).
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	_, err := parser.Parse(cfg.Scheduler.SnapshotClientBalances)
	assert.NoError(t, err, "snapshot_client_balances default must be schedulable")

	_, err = parser.Parse(cfg.Scheduler.SnapshotProfitLoss)
	assert.NoError(t, err, "snapshot_profit_loss default must be schedulable")
}

func TestNewScheduler_RegistersAllJobs(t *testing.T) {
	cfg := defaultedConfig(t)
	jobRunner := jobs.NewJobRunner(nil, &jobs.Services{}, cfg)

	s := NewScheduler(jobRunner)

	assert.Len(t, s.cron.Entries(), 2)
}
