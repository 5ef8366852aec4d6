package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type examHistoryHandler struct {
	logger  *logrus.Logger
	results exam.ResultFinder
}

func NewExamHistoryHandler(logger *logrus.Logger, results exam.ResultFinder) Handler {
	return &examHistoryHandler{
		logger:  logger,
		results: results,
	}
}

// Handle @Summary List the caller's completed exams
// @Tags Exams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} exam.HistoryEntry "Completed sessions"
// @Router /api/v1/exams/history [get]
func (h *examHistoryHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	history, err := h.results.History(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(history)
}
