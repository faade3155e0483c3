package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes HTTP traffic counters and latencies, database query durations
// and domain counters for the directory and the ledger.
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	DBQueryDuration  *prometheus.HistogramVec
	EmployeesCreated prometheus.Counter
	EmployeesDeleted prometheus.Counter
	AttendanceMarked *prometheus.CounterVec
	Conflicts        *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'create_employee', 'insert_attendance'
		EmployeesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_created_total",
			Help: "Total number of employees added to the directory.",
		}),
		EmployeesDeleted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_deleted_total",
			Help: "Total number of employees removed from the directory.",
		}),
		AttendanceMarked: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_attendance_marked_total",
			Help: "Total number of attendance records written to the ledger.",
		}, []string{"status"}),
		Conflicts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_conflicts_total",
			Help: "Total number of rejected writes because of a uniqueness rule.",
		}, []string{"entity"}),
	}

	metrics.AttendanceMarked.WithLabelValues("Present")
	metrics.AttendanceMarked.WithLabelValues("Absent")
	metrics.Conflicts.WithLabelValues("employee")
	metrics.Conflicts.WithLabelValues("attendance")

	return metrics
}
