package middleware

import (
	"github.com/NeuralTrust/TrustProctor/pkg/common"
	infra "github.com/NeuralTrust/TrustProctor/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

// NewWebsocketMiddleware rejects plain HTTP on stream routes and caps concurrent streams.
// The slot is released by the stream handler when the connection ends, or here when the
// upgrade fails before the handler runs.
func NewWebsocketMiddleware(logger *logrus.Logger, maxConnections int) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: infra.NewSemaphore(maxConnections),
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		slot, ok := m.semaphore.AcquireSlot()
		if !ok {
			m.logger.Warn("maximum websocket connections reached, rejecting connection")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many open streams"})
		}
		c.Locals(string(common.WsSemaphoreKey), slot)
		if err := c.Next(); err != nil {
			slot.Release()
			return err
		}
		return nil
	}
}
