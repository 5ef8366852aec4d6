package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/user"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	jwtMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt/mocks"
	rateMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/ratelimit/mocks"
	"github.com/NeuralTrust/TrustProctor/pkg/server/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func claimsFor(role user.Role) *jwt.Claims {
	return &jwt.Claims{UserID: uuid.NewString(), Email: "ada@example.com", Role: role}
}

func withClaims(claims *jwt.Claims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals(string(common.UserClaimsKey), claims)
		}
		return c.Next()
	}
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(quietLogger(), manager).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString("OK") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(quietLogger(), manager).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString("OK") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().DecodeToken("bad").Return(nil, jwt.ErrExpiredToken)

	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(quietLogger(), manager).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString("OK") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	claims := claimsFor(user.RoleStudent)
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().DecodeToken("good").Return(claims, nil)

	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(quietLogger(), manager).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		got, ok := c.Locals(string(common.UserClaimsKey)).(*jwt.Claims)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(got.UserID)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_QueryTokenOnlyForStreams(t *testing.T) {
	claims := claimsFor(user.RoleStudent)
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().DecodeToken("good").Return(claims, nil).Once()

	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(quietLogger(), manager).Middleware())
	app.Get("/ws/v1/proctoring/:id", func(c *fiber.Ctx) error { return c.SendString("OK") })
	app.Get("/api/v1/exams", func(c *fiber.Ctx) error { return c.SendString("OK") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws/v1/proctoring/abc?token=good", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/exams?token=good", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		claims *jwt.Claims
		want   int
	}{
		{name: "no claims", claims: nil, want: fiber.StatusUnauthorized},
		{name: "student", claims: claimsFor(user.RoleStudent), want: fiber.StatusForbidden},
		{name: "instructor", claims: claimsFor(user.RoleInstructor), want: fiber.StatusOK},
		{name: "admin", claims: claimsFor(user.RoleAdmin), want: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(withClaims(tt.claims))
			app.Use(middleware.NewAuthorMiddleware(quietLogger()).Middleware())
			app.Post("/exams", func(c *fiber.Ctx) error { return c.SendString("OK") })

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/exams", nil))

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestFrameRateMiddleware(t *testing.T) {
	claims := claimsFor(user.RoleStudent)
	limiter := rateMocks.NewFrameLimiter(t)
	limiter.EXPECT().Allow(claims.UserID).Return(true).Once()
	limiter.EXPECT().Allow(claims.UserID).Return(false).Once()

	app := fiber.New()
	app.Use(withClaims(claims))
	app.Use(middleware.NewFrameRateMiddleware(quietLogger(), limiter).Middleware())
	app.Post("/frame", func(c *fiber.Ctx) error { return c.SendString("OK") })

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/frame", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/frame", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}

func TestPanicRecoverMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewPanicRecoverMiddleware(quietLogger()).Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error { panic(errors.New("boom")) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestMetricsMiddleware_TraceID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewMetricsMiddleware(quietLogger(), true).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(string(common.TraceIdKey)).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(common.TraceIDHeader)
	assert.NotEmpty(t, generated)
	_, parseErr := uuid.Parse(generated)
	assert.NoError(t, parseErr)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(common.TraceIDHeader, "trace-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "trace-123", resp.Header.Get(common.TraceIDHeader))
}

func TestWebsocketMiddleware_RejectsPlainHTTP(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewWebsocketMiddleware(quietLogger(), 1).Middleware())
	app.Get("/ws/v1/proctoring/:id", func(c *fiber.Ctx) error { return c.SendString("OK") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws/v1/proctoring/abc", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestWebsocketMiddleware_CapsConnections(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewWebsocketMiddleware(quietLogger(), 1).Middleware())
	app.Get("/ws/v1/proctoring/:id", func(c *fiber.Ctx) error { return c.SendString("OK") })

	upgrade := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ws/v1/proctoring/abc", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		return req
	}

	resp, err := app.Test(upgrade())
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the plain handler never releases, so the single slot stays taken
	resp, err = app.Test(upgrade())
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestWebsocketMiddleware_FailedHandshakeFreesSlot(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewWebsocketMiddleware(quietLogger(), 1).Middleware())
	app.Get("/ws/v1/proctoring/:id", websocket.New(func(c *websocket.Conn) {
		t.Error("handler must not run without a completed handshake")
	}))

	// no Sec-WebSocket-Key or version, so the upgrader refuses the handshake
	malformed := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ws/v1/proctoring/abc", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		return req
	}

	for i := 0; i < 3; i++ {
		resp, err := app.Test(malformed())
		require.NoError(t, err)
		assert.NotEqual(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
	}
}
