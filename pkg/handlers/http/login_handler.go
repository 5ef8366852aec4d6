package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/auth"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type loginHandler struct {
	logger        *logrus.Logger
	authenticator auth.Authenticator
}

func NewLoginHandler(logger *logrus.Logger, authenticator auth.Authenticator) Handler {
	return &loginHandler{
		logger:        logger,
		authenticator: authenticator,
	}
}

// Handle @Summary Log in
// @Description Exchanges email and password for a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body request.LoginRequest true "Credentials"
// @Success 200 {object} auth.LoginResult "Token and user"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/v1/users/login [post]
func (h *loginHandler) Handle(c *fiber.Ctx) error {
	var req request.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.authenticator.Login(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
