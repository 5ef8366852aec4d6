package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createExamHandler struct {
	logger  *logrus.Logger
	creator exam.Creator
}

func NewCreateExamHandler(logger *logrus.Logger, creator exam.Creator) Handler {
	return &createExamHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Create an exam
// @Description Only instructors and admins may author exams
// @Tags Exams
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param exam body request.CreateExamRequest true "Exam definition"
// @Success 201 {object} exam.Exam "Exam created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Router /api/v1/exams [post]
func (h *createExamHandler) Handle(c *fiber.Ctx) error {
	claims, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req request.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse exam")
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.creator.Create(c.Context(), userID, claims.Role, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
