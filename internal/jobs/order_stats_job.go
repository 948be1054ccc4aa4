package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs how many orders sit in each lifecycle
// status. Runs every minute for operational visibility.
type OrderStatsJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a new job that reports order counts per status.
func NewOrderStatsJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job to run at the top of every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order counts by status",
			"total", stats.Total,
			"pending", stats.ByStatus["Pending"],
			"in_transit", stats.ByStatus["In Transit"],
			"delivered", stats.ByStatus["Delivered"],
			"canceled", stats.ByStatus["Canceled"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
