package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getExamHandler struct {
	logger *logrus.Logger
	finder exam.Finder
}

func NewGetExamHandler(logger *logrus.Logger, finder exam.Finder) Handler {
	return &getExamHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve an exam
// @Tags Exams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Exam ID"
// @Success 200 {object} exam.Exam "Exam without answers"
// @Failure 404 {object} map[string]interface{} "Exam not found"
// @Router /api/v1/exams/{id} [get]
func (h *getExamHandler) Handle(c *fiber.Ctx) error {
	examID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid exam ID")
	}
	entity, err := h.finder.Find(c.Context(), examID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
