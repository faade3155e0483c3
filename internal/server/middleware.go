package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	unmatchedRoute  = "unmatched"
)

// requestID propagates the caller's X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", c.GetString(requestIDKey)),
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.ErrorContext(c.Request.Context(), "request completed", attrs...)
		case status >= http.StatusBadRequest:
			log.WarnContext(c.Request.Context(), "request completed", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "request completed", attrs...)
		}
	}
}

func observe(appMetrics *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		appMetrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		appMetrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func recovery(log *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "panic while serving request",
			slog.Any("panic", recovered), slog.String("request_id", c.GetString(requestIDKey)))
		writeError(c, http.StatusInternalServerError, internalMessage)
	}
}

