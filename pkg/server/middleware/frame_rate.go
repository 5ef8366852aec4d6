package middleware

import (
	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type frameRateMiddleware struct {
	logger  *logrus.Logger
	limiter ratelimit.FrameLimiter
}

// NewFrameRateMiddleware throttles frame uploads per authenticated user.
func NewFrameRateMiddleware(logger *logrus.Logger, limiter ratelimit.FrameLimiter) Middleware {
	return &frameRateMiddleware{
		logger:  logger,
		limiter: limiter,
	}
}

func (m *frameRateMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals(string(common.UserClaimsKey)).(*jwt.Claims)
		if !ok || claims == nil {
			return ctx.Next()
		}
		if !m.limiter.Allow(claims.UserID) {
			m.logger.WithField("user_id", claims.UserID).Debug("frame rate exceeded")
			ctx.Set(fiber.HeaderRetryAfter, "1")
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "frame rate exceeded"})
		}
		return ctx.Next()
	}
}
