package middleware

import (
	"strings"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger  *logrus.Logger
	enabled bool
}

// NewMetricsMiddleware tags every request with a trace ID and counts it by method and status.
func NewMetricsMiddleware(logger *logrus.Logger, enabled bool) Middleware {
	return &metricsMiddleware{
		logger:  logger,
		enabled: enabled,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(common.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Locals(string(common.TraceIdKey), traceID)
		c.Set(common.TraceIDHeader, traceID)

		start := time.Now()
		err := c.Next()
		if strings.HasPrefix(c.Path(), "/ws/") {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		c.Locals(string(common.LatencyContextKey), time.Since(start))

		if m.enabled {
			prometheus.HTTPRequestsTotal.WithLabelValues(c.Method(), metrics.StatusClass(status)).Inc()
		}
		m.logger.WithFields(logrus.Fields{
			"trace_id":   traceID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		}).Debug("request served")
		return err
	}
}
