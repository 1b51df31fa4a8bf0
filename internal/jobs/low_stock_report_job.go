package jobs

import (
	"context"
	"log/slog"

	"cafe/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports catalog items whose inventory has
// dropped to or below the configured threshold, so staff can restock before
// fulfillment starts failing.
type LowStockReportJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a new low stock report job.
// The schedule is a standard 5-field cron expression.
func NewLowStockReportJob(handler queries.GetLowStockItemsQueryHandler,
	threshold int, schedule string, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start schedules the report to run on the configured cron expression.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockItemsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", queryErr)
			return
		}

		items, queryErr := j.handler.Handle(ctx, query)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", queryErr)
			return
		}

		if len(items) == 0 {
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Item is running low",
				"item", item.Name, "amount", item.Amount, "threshold", j.threshold)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
