package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listExamsHandler struct {
	logger *logrus.Logger
	finder exam.Finder
}

func NewListExamsHandler(logger *logrus.Logger, finder exam.Finder) Handler {
	return &listExamsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List active exams
// @Description Returns every active exam without correct answers
// @Tags Exams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} exam.Exam "Exams"
// @Router /api/v1/exams [get]
func (h *listExamsHandler) Handle(c *fiber.Ctx) error {
	exams, err := h.finder.ListActive(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(exams)
}
