package fleetmetrics

import (
	"context"

	"github.com/robfig/cron/v3"

	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
	"github.com/dmkvsk/JSR-FleetService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FleetService источник агрегированных показателей флота
type FleetService interface {
	DashboardSummary(ctx context.Context) (*fleetService.DashboardSummary, error)
}

// Job периодически пересчитывает fleet-гейджи Prometheus
// по расписанию cron. Гейджи дублируют dashboard-summary,
// чтобы показатели флота были видны в мониторинге без опроса API.
type Job struct {
	service FleetService
	metrics *metrics.Metrics
	cron    *cron.Cron
	logger  Logger
}

// New создает job обновления метрик флота
func New(service FleetService, m *metrics.Metrics, logger Logger) *Job {
	return &Job{
		service: service,
		metrics: m,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start запускает периодическое обновление по cron-выражению
func (j *Job) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.refresh); err != nil {
		return err
	}

	// Первое обновление сразу, не дожидаясь расписания
	j.refresh()
	j.cron.Start()
	j.logger.Info("Fleet metrics job started with schedule %q", schedule)

	return nil
}

// Stop останавливает расписание и ждет завершения текущего запуска
func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Fleet metrics job stopped")
}

func (j *Job) refresh() {
	summary, err := j.service.DashboardSummary(context.Background())
	if err != nil {
		j.logger.Error("Fleet metrics refresh failed: %v", err)
		return
	}

	j.metrics.SetFleetStats(
		int(summary.TotalVehicles),
		int(summary.AvailableVehicles),
		int(summary.TodayBookings),
		int(summary.MaintenanceAlerts),
		int(summary.RefuelingNeeded),
	)
}
