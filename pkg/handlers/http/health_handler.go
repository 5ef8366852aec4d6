package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is any dependency the liveness check should reach, such as the database or redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	logger  *logrus.Logger
	pingers map[string]Pinger
}

func NewHealthHandler(logger *logrus.Logger, pingers map[string]Pinger) Handler {
	return &healthHandler{
		logger:  logger,
		pingers: pingers,
	}
}

func (h *healthHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.pingers))
	status := fiber.StatusOK
	for name, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			h.logger.WithError(err).WithField("dependency", name).Warn("health check failed")
			checks[name] = "unreachable"
			status = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "ok"
	if status != fiber.StatusOK {
		state = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": state,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
	})
}
