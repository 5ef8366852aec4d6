package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/auth"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type registerUserHandler struct {
	logger    *logrus.Logger
	registrar auth.Registrar
}

func NewRegisterUserHandler(logger *logrus.Logger, registrar auth.Registrar) Handler {
	return &registerUserHandler{
		logger:    logger,
		registrar: registrar,
	}
}

// Handle @Summary Register a user
// @Description Creates a student, instructor or admin account
// @Tags Users
// @Accept json
// @Produce json
// @Param user body request.RegisterUserRequest true "User data"
// @Success 201 {object} user.User "User created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/v1/users/register [post]
func (h *registerUserHandler) Handle(c *fiber.Ctx) error {
	var req request.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse register request")
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.registrar.Register(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
