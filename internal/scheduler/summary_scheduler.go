package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
)

// SummaryScheduler logs a daily intake digest for the previous day.
type SummaryScheduler struct {
	cron          *cron.Cron
	reportService service.ReportService
}

func NewSummaryScheduler(reportService service.ReportService) *SummaryScheduler {
	return &SummaryScheduler{
		cron:          cron.New(),
		reportService: reportService,
	}
}

// Start schedules the digest shortly after midnight.
func (s *SummaryScheduler) Start() error {
	_, err := s.cron.AddFunc("5 0 * * *", s.logDailySummary)
	if err != nil {
		logger.Error("Failed to add cron job for daily summary", err)
		return err
	}

	s.cron.Start()
	logger.Info("Daily summary scheduler started (runs at 00:05)", nil)
	return nil
}

func (s *SummaryScheduler) Stop() {
	logger.Info("Stopping daily summary scheduler...", nil)
	s.cron.Stop()
	logger.Info("Daily summary scheduler stopped", nil)
}

func (s *SummaryScheduler) logDailySummary() {
	yesterday := time.Now().AddDate(0, 0, -1)

	summary, err := s.reportService.Summarize(yesterday)
	if err != nil {
		logger.Error("Failed to build daily summary", err)
		return
	}

	logger.Info("Daily intake summary", map[string]interface{}{
		"date":               summary.Date,
		"total_orders":       summary.TotalOrders,
		"orders_by_status":   summary.OrdersByStatus,
		"total_revenue":      summary.TotalRevenue,
		"total_reservations": summary.TotalReservations,
	})
}
