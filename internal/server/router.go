package server

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/services/attendance"
	"github.com/UnknownOlympus/hrms-lite/internal/services/employees"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to HRMS Lite API"

// EmployeeDirectory is the employee surface the router dispatches to.
type EmployeeDirectory interface {
	CreateEmployee(ctx context.Context, input employees.CreateEmployeeInput) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int) (models.Acknowledgement, error)
}

// AttendanceLedger is the attendance surface the router dispatches to.
type AttendanceLedger interface {
	MarkAttendance(ctx context.Context, input attendance.MarkAttendanceInput) (models.Attendance, error)
	QueryAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
}

type Handler struct {
	log       *slog.Logger
	directory EmployeeDirectory
	ledger    AttendanceLedger
}

// NewRouter builds the public API. Every collection route answers with and without the trailing slash.
func NewRouter(
	log *slog.Logger,
	directory EmployeeDirectory,
	ledger AttendanceLedger,
	appMetrics *metrics.Metrics,
	corsOrigins []string,
) *gin.Engine {
	registerJSONTagNames()

	handler := &Handler{log: log, directory: directory, ledger: ledger}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { writeError(c, http.StatusNotFound, "Not Found") })
	router.NoMethod(func(c *gin.Context) { writeError(c, http.StatusMethodNotAllowed, "Method Not Allowed") })

	router.Use(
		requestID(),
		accessLog(log),
		observe(appMetrics),
		gin.CustomRecovery(recovery(log)),
		cors.New(corsConfig(corsOrigins)),
	)

	router.GET("/", handler.welcome)

	for _, prefix := range []string{"/employees", "/employees/"} {
		router.POST(prefix, handler.createEmployee)
		router.GET(prefix, handler.listEmployees)
	}
	router.DELETE("/employees/:id", handler.deleteEmployee)

	for _, prefix := range []string{"/attendance", "/attendance/"} {
		router.POST(prefix, handler.markAttendance)
		router.GET(prefix, handler.queryAttendance)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour, //nolint:mnd // browsers cap preflight caching anyway
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}
