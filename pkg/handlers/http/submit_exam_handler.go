package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type submitExamHandler struct {
	logger    *logrus.Logger
	submitter exam.Submitter
}

func NewSubmitExamHandler(logger *logrus.Logger, submitter exam.Submitter) Handler {
	return &submitExamHandler{
		logger:    logger,
		submitter: submitter,
	}
}

// Handle @Summary Submit an exam
// @Description Grades the answers, applies the proctoring adjustment and issues a certificate when eligible
// @Tags Exams
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Exam ID"
// @Param submission body request.SubmitExamRequest true "Answers"
// @Success 200 {object} exam.Submission "Graded submission"
// @Failure 400 {object} map[string]interface{} "Session is not in progress"
// @Failure 403 {object} map[string]interface{} "Session belongs to another user"
// @Router /api/v1/exams/{id}/submit [post]
func (h *submitExamHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	examID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid exam ID")
	}

	var req request.SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	submission, err := h.submitter.Submit(c.Context(), examID, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(submission)
}
