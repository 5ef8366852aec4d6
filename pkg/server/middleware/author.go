package middleware

import (
	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type authorMiddleware struct {
	logger *logrus.Logger
}

// NewAuthorMiddleware lets only instructors and admins through. It must run after the auth middleware.
func NewAuthorMiddleware(logger *logrus.Logger) Middleware {
	return &authorMiddleware{logger: logger}
}

func (m *authorMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals(string(common.UserClaimsKey)).(*jwt.Claims)
		if !ok || claims == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		if !claims.Role.CanAuthor() {
			m.logger.WithFields(logrus.Fields{
				"user_id": claims.UserID,
				"role":    claims.Role,
				"path":    ctx.Path(),
			}).Debug("role not allowed")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role for this operation"})
		}
		return ctx.Next()
	}
}
