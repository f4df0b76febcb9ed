package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"crm-commissions/internal/logger"
)

// DefaultRunTimeout bounds one scheduled period-close run.
const DefaultRunTimeout = time.Hour

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	job    *PeriodCloseJob
	logger logger.Logger
}

func NewCronManager(job *PeriodCloseJob, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Nop()
	}
	return &CronManager{
		cron:   cron.New(),
		job:    job,
		logger: log,
	}
}

// SetupJobs registers the period-close job on spec, a standard 5-field cron expression.
func (cm *CronManager) SetupJobs(spec string) error {
	_, err := cm.cron.AddFunc(spec, cm.runPeriodClose)
	if err != nil {
		return err
	}
	cm.logger.Info("cron jobs configured", "period_close", spec)
	return nil
}

func (cm *CronManager) runPeriodClose() {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultRunTimeout)
	defer cancel()

	if _, err := cm.job.Run(ctx); err != nil {
		cm.logger.Error("period close job failed", "error", err)
	}
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish.
func (cm *CronManager) Stop() {
	cm.logger.Info("stopping cron scheduler")
	<-cm.cron.Stop().Done()
}

func (cm *CronManager) Entries() []cron.Entry {
	return cm.cron.Entries()
}
