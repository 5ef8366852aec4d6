package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	RecoverMiddleware   Middleware
	MetricsMiddleware   Middleware
	AuthMiddleware      Middleware
	AuthorMiddleware    Middleware
	FrameRateMiddleware Middleware
	WebsocketMiddleware Middleware
}

// Global returns the middlewares every route goes through, in order.
func (t *Transport) Global() []interface{} {
	var handlers []interface{}
	for _, m := range []Middleware{t.RecoverMiddleware, t.MetricsMiddleware} {
		if m != nil {
			handlers = append(handlers, m.Middleware())
		}
	}
	return handlers
}
