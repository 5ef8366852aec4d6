package http

import (
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrUnauthenticated    = "authentication required"
	ErrInternal           = "internal server error"
)

type errorMapping struct {
	target error
	status int
}

var errorStatuses = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{domain.ErrForbidden, fiber.StatusForbidden},
	{domain.ErrSessionOwnership, fiber.StatusForbidden},
	{domain.ErrEmailTaken, fiber.StatusConflict},
	{domain.ErrSessionNotActive, fiber.StatusBadRequest},
	{domain.ErrExamInactive, fiber.StatusBadRequest},
	{proctoring.ErrNoFaceDetected, fiber.StatusBadRequest},
	{proctoring.ErrMultipleFaces, fiber.StatusBadRequest},
	{proctoring.ErrMissingEmbedding, fiber.StatusBadRequest},
	{imaging.ErrEmptyImage, fiber.StatusBadRequest},
	{imaging.ErrInvalidImage, fiber.StatusBadRequest},
	{imaging.ErrImageTooLarge, fiber.StatusRequestEntityTooLarge},
	{proctoring.ErrServiceNotReady, fiber.StatusServiceUnavailable},
}

// statusFor maps use case errors onto HTTP statuses. Unknown errors are internal.
func statusFor(err error) int {
	if domain.IsNotFoundError(err) {
		return fiber.StatusNotFound
	}
	for _, m := range errorStatuses {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
		logger.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.Status(status).JSON(fiber.Map{"error": ErrInternal})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// currentUser reads the claims stored by the auth middleware.
func currentUser(c *fiber.Ctx) (*jwt.Claims, uuid.UUID, bool) {
	claims, ok := c.Locals(string(common.UserClaimsKey)).(*jwt.Claims)
	if !ok || claims == nil {
		return nil, uuid.Nil, false
	}
	userID, err := claims.UserUUID()
	if err != nil {
		return nil, uuid.Nil, false
	}
	return claims, userID, true
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrUnauthenticated})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
