package http

import (
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeFrameHandler struct {
	logger  *logrus.Logger
	service proctoring.Service
}

func NewAnalyzeFrameHandler(logger *logrus.Logger, service proctoring.Service) Handler {
	return &analyzeFrameHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Analyze one webcam frame
// @Description Detects faces in the frame, records violations against the session and returns the analysis.
// @Tags Proctoring
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sessionId formData string true "Exam session ID"
// @Param image formData file true "Frame"
// @Success 200 {object} proctoring.FrameAnalysis "Frame analysis"
// @Failure 429 {object} map[string]interface{} "Frame rate exceeded"
// @Router /api/v1/proctoring/frame [post]
func (h *analyzeFrameHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	image, req, err := readFrame(c)
	if err != nil {
		if errors.Is(err, errFrameTooLarge) {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
		}
		return badRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	analysis, err := h.service.AnalyzeFrame(c.Context(), req.SessionUUID(), userID, image)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if analysis.WarningLimitReached {
		h.logger.WithFields(logrus.Fields{
			"session_id": analysis.SessionID,
			"warnings":   analysis.WarningCount,
		}).Warn("warning limit reached")
	}
	return c.Status(fiber.StatusOK).JSON(analysis)
}
