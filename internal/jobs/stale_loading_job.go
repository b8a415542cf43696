package jobs

import (
	"context"
	"time"

	"garment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DashboardReader is the read model the stale loading job scans.
type DashboardReader interface {
	Handle(ctx context.Context, query queries.GetLoadingDashboardQuery) (*queries.GetLoadingDashboardResponse, error)
}

// StaleLoadingJob reports loading transactions waiting too long for approval or
// handover. It only logs; pending transactions are never rejected automatically.
type StaleLoadingJob struct {
	reader     DashboardReader
	schedule   string
	staleAfter time.Duration
	now        func() time.Time
	cron       *cron.Cron
	logger     *zap.Logger
}

func NewStaleLoadingJob(reader DashboardReader, schedule string, staleAfter time.Duration, logger *zap.Logger) *StaleLoadingJob {
	return &StaleLoadingJob{
		reader:     reader,
		schedule:   schedule,
		staleAfter: staleAfter,
		now:        time.Now,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.Named("stale_loading_job"),
	}
}

// Start registers the scan on the configured schedule (with seconds field).
func (j *StaleLoadingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("Stale loading scan failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale loading job started",
		zap.String("schedule", j.schedule), zap.Duration("stale_after", j.staleAfter))
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *StaleLoadingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale loading job stopped")
}

// Run scans the dashboard once and returns how many transactions are stale.
func (j *StaleLoadingJob) Run(ctx context.Context) (int, error) {
	dashboard, err := j.reader.Handle(ctx, queries.NewGetLoadingDashboardQuery())
	if err != nil {
		return 0, err
	}

	now := j.now()
	stale := j.report(now, "approval", dashboard.PendingApproval) +
		j.report(now, "handover", dashboard.PendingHandover)
	if stale > 0 {
		j.logger.Info("Stale loadings found", zap.Int("count", stale))
	}
	return stale, nil
}

func (j *StaleLoadingJob) report(now time.Time, waitingFor string, loadings []queries.LoadingSummary) int {
	count := 0
	for _, l := range loadings {
		age := now.Sub(l.CreatedAt)
		if age < j.staleAfter {
			continue
		}
		count++
		j.logger.Warn("Loading waiting too long",
			zap.String("id", l.ID.String()),
			zap.String("waiting_for", waitingFor),
			zap.String("order_id", l.OrderID),
			zap.Int("line_no", l.LineNo),
			zap.String("employee_id", l.EmployeeID),
			zap.Duration("age", age),
		)
	}
	return count
}
