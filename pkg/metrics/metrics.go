package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-коллекторов сервиса.
// Все коллекторы регистрируются в дефолтном registry,
// который отдаётся через promhttp.Handler().
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики БД
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     *prometheus.GaugeVec
	DBConnsInUse    *prometheus.GaugeVec
	DBConnsIdle     *prometheus.GaugeVec

	// Доменные метрики флота (обновляются фоновой джобой)
	FleetVehiclesTotal     *prometheus.GaugeVec
	FleetVehiclesAvailable *prometheus.GaugeVec
	FleetBookingsToday     *prometheus.GaugeVec
	FleetPendingMaint      *prometheus.GaugeVec
	FleetRefuelingNeeded   *prometheus.GaugeVec
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		DBConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),

		DBConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		FleetVehiclesTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleet_vehicles_total",
			Help: "Total number of vehicles in the fleet",
		}, []string{"service"}),

		FleetVehiclesAvailable: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleet_vehicles_available",
			Help: "Number of vehicles with base status available",
		}, []string{"service"}),

		FleetBookingsToday: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleet_bookings_today",
			Help: "Number of bookings starting today",
		}, []string{"service"}),

		FleetPendingMaint: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleet_pending_maintenance",
			Help: "Number of not completed maintenance downtime blocks",
		}, []string{"service"}),

		FleetRefuelingNeeded: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleet_refueling_needed",
			Help: "Number of not completed refueling downtime blocks",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// SetDBConnStats обновляет gauge-метрики пула соединений
func (m *Metrics) SetDBConnStats(open, inUse, idle int) {
	m.DBConnsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBConnsInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBConnsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

// SetFleetStats обновляет доменные gauge-метрики флота
func (m *Metrics) SetFleetStats(total, available, bookingsToday, pendingMaint, refuelingNeeded int) {
	m.FleetVehiclesTotal.WithLabelValues(m.serviceName).Set(float64(total))
	m.FleetVehiclesAvailable.WithLabelValues(m.serviceName).Set(float64(available))
	m.FleetBookingsToday.WithLabelValues(m.serviceName).Set(float64(bookingsToday))
	m.FleetPendingMaint.WithLabelValues(m.serviceName).Set(float64(pendingMaint))
	m.FleetRefuelingNeeded.WithLabelValues(m.serviceName).Set(float64(refuelingNeeded))
}
