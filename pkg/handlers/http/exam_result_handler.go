package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type examResultHandler struct {
	logger  *logrus.Logger
	results exam.ResultFinder
}

func NewExamResultHandler(logger *logrus.Logger, results exam.ResultFinder) Handler {
	return &examResultHandler{
		logger:  logger,
		results: results,
	}
}

// Handle @Summary Retrieve the result of a completed session
// @Tags Exams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sessionId path string true "Session ID"
// @Success 200 {object} exam.Result "Result"
// @Router /api/v1/exams/results/{sessionId} [get]
func (h *examResultHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	sessionID, err := parseUUIDParam(c, "sessionId")
	if err != nil {
		return badRequest(c, "invalid session ID")
	}
	result, err := h.results.Result(c.Context(), sessionID, userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
