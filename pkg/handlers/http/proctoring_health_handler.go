package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type proctoringHealthHandler struct {
	logger  *logrus.Logger
	service proctoring.Service
}

func NewProctoringHealthHandler(logger *logrus.Logger, service proctoring.Service) Handler {
	return &proctoringHealthHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Proctoring health
// @Description Reports the service state and tests the connection to face recognition
// @Tags Proctoring
// @Produce json
// @Success 200 {object} proctoring.Health "Ready"
// @Failure 503 {object} proctoring.Health "Not ready"
// @Router /api/v1/proctoring/health [get]
func (h *proctoringHealthHandler) Handle(c *fiber.Ctx) error {
	health := h.service.Health(c.Context())
	status := fiber.StatusOK
	if health.State != proctoring.StateReady || health.Error != "" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(health)
}
