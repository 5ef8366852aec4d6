package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/config"
	"github.com/NeuralTrust/TrustProctor/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouter struct {
	err error
}

func (r stubRouter) BuildRoutes(app *fiber.App) error {
	if r.err != nil {
		return r.err
	}
	app.Get("/stub", func(c *fiber.Ctx) error { return c.SendString("stub") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	return nil
}

func newTestServer(routers ...router.ServerRouter) *ProctorServer {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewProctorServer(ProctorServerDI{
		Config:  &config.Config{},
		Logger:  logger,
		Routers: routers,
	})
}

func TestProctorServer_Liveness(t *testing.T) {
	s := newTestServer()

	resp, err := s.Router.Test(httptest.NewRequest(http.MethodGet, AdminHealthPath, nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProctorServer_MountsRouters(t *testing.T) {
	s := newTestServer(stubRouter{}, stubRouter{err: errors.New("broken")})

	resp, err := s.Router.Test(httptest.NewRequest(http.MethodGet, "/stub", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProctorServer_ErrorsAreJSON(t *testing.T) {
	s := newTestServer(stubRouter{})

	resp, err := s.Router.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestProctorServer_ShutdownWithoutMetrics(t *testing.T) {
	s := newTestServer()

	assert.NoError(t, s.Shutdown())
}
