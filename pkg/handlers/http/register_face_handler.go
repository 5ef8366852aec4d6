package http

import (
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type registerFaceHandler struct {
	logger  *logrus.Logger
	service proctoring.Service
}

func NewRegisterFaceHandler(logger *logrus.Logger, service proctoring.Service) Handler {
	return &registerFaceHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Register the caller's face
// @Description Stores the reference embedding used for identity checks. Exactly one face must be visible.
// @Tags Proctoring
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param image formData file true "Face image"
// @Success 201 {object} map[string]interface{} "Face registered"
// @Failure 400 {object} map[string]interface{} "No face or multiple faces"
// @Router /api/v1/proctoring/register-face [post]
func (h *registerFaceHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	image, _, err := readFrame(c)
	if err != nil {
		if errors.Is(err, errFrameTooLarge) {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
		}
		return badRequest(c, err.Error())
	}

	enrollment, err := h.service.RegisterFace(c.Context(), userID, image)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "face registered",
		"user_id":       enrollment.UserID,
		"dimensions":    len(enrollment.Embedding),
		"registered_at": enrollment.RegisteredAt,
	})
}
