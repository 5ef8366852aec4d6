package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type startExamHandler struct {
	logger  *logrus.Logger
	starter exam.Starter
}

func NewStartExamHandler(logger *logrus.Logger, starter exam.Starter) Handler {
	return &startExamHandler{
		logger:  logger,
		starter: starter,
	}
}

// Handle @Summary Start or resume an exam session
// @Tags Exams
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Exam ID"
// @Param biodata body request.StartExamRequest false "Candidate biodata"
// @Success 201 {object} exam.Started "New session"
// @Success 200 {object} exam.Started "Resumed session"
// @Router /api/v1/exams/{id}/start [post]
func (h *startExamHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	examID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid exam ID")
	}

	var req request.StartExamRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, ErrInvalidJsonPayload)
		}
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	started, err := h.starter.Start(c.Context(), exam.StartInput{
		ExamID:         examID,
		UserID:         userID,
		Request:        &req,
		UserAgent:      c.Get(fiber.HeaderUserAgent),
		AcceptLanguage: c.Get(fiber.HeaderAcceptLanguage),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	status := fiber.StatusCreated
	if started.Resumed {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(started)
}
