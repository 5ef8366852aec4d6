package middleware

import (
	"errors"
	"strings"

	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const tokenQueryParam = "token"

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

// NewAuthMiddleware requires a bearer token and stores its claims in the request locals.
// Websocket upgrades may pass the token as a query parameter since browsers cannot set headers on them.
func NewAuthMiddleware(logger *logrus.Logger, jwtManager jwt.Manager) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenString, err := m.extractToken(ctx)
		if err != nil {
			m.logger.WithError(err).Debug("missing bearer token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		claims, err := m.jwtManager.DecodeToken(tokenString)
		if err != nil {
			m.logger.WithError(err).Debug("invalid token")
			msg := "invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "token expired"
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
		}
		if _, err := claims.UserUUID(); err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		ctx.Locals(string(common.UserClaimsKey), claims)
		return ctx.Next()
	}
}

func (m *authMiddleware) extractToken(ctx *fiber.Ctx) (string, error) {
	authHeader := ctx.Get(common.AuthorizationHeader)
	if authHeader == "" {
		if token := ctx.Query(tokenQueryParam); token != "" && isWebsocketPath(ctx.Path()) {
			return token, nil
		}
		return "", errors.New("authorization required")
	}
	if !strings.HasPrefix(authHeader, common.BearerPrefix) {
		return "", errors.New("invalid authorization format")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, common.BearerPrefix))
	if token == "" {
		return "", errors.New("empty token provided")
	}
	return token, nil
}

func isWebsocketPath(path string) bool {
	return strings.HasPrefix(path, "/ws/")
}
