package router

import (
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/config"
	handlers "github.com/NeuralTrust/TrustProctor/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TrustProctor/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustProctor/pkg/server/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	HealthPath      = "/health"
	VersionPath     = "/version"
	APIPrefix       = "/api/v1"
	FrameStreamPath = "/ws/v1/proctoring/:sessionId"
	SwaggerSpecPath = "/swagger.json"
	DocsPath        = "/docs/*"

	swaggerSpecFile = "./docs/swagger.json"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	wsHandlerTransport  wsHandlers.HandlerTransport
	config              *config.Config
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
	cfg *config.Config,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		wsHandlerTransport:  wsHandlerTransport,
		config:              cfg,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}
	wsHandlerTransport, ok := r.wsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	mw := r.middlewareTransport
	if global := mw.Global(); len(global) > 0 {
		router.Use(global...)
	}

	router.Get(HealthPath, handlerTransport.HealthHandler.Handle)
	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	router.Static(SwaggerSpecPath, swaggerSpecFile)
	router.Get(DocsPath, swagger.New(swagger.Config{
		URL: SwaggerSpecPath,
	}))

	api := router.Group(APIPrefix)

	users := api.Group("/users")
	users.Post("/register", handlerTransport.RegisterUserHandler.Handle)
	users.Post("/login", handlerTransport.LoginHandler.Handle)

	// certificate verification is public so third parties can check a credential
	api.Get("/certificates/verify/:id", handlerTransport.VerifyCertificateHandler.Handle)

	authenticated := mw.AuthMiddleware.Middleware()

	exams := api.Group("/exams", authenticated)
	exams.Get("/", handlerTransport.ListExamsHandler.Handle)
	exams.Get("/history", handlerTransport.ExamHistoryHandler.Handle)
	exams.Get("/results/:sessionId", handlerTransport.ExamResultHandler.Handle)
	exams.Post("/", mw.AuthorMiddleware.Middleware(), handlerTransport.CreateExamHandler.Handle)
	exams.Get("/:id", handlerTransport.GetExamHandler.Handle)
	exams.Post("/:id/start", handlerTransport.StartExamHandler.Handle)
	exams.Post("/:id/submit", handlerTransport.SubmitExamHandler.Handle)

	proctoring := api.Group("/proctoring")
	proctoring.Get("/health", handlerTransport.ProctoringHealthHandler.Handle)
	proctoring.Post("/register-face", authenticated, handlerTransport.RegisterFaceHandler.Handle)
	proctoring.Post(
		"/frame",
		authenticated,
		mw.FrameRateMiddleware.Middleware(),
		handlerTransport.AnalyzeFrameHandler.Handle,
	)
	proctoring.Get("/sessions/:sessionId/report", authenticated, handlerTransport.SessionReportHandler.Handle)

	certificates := api.Group("/certificates", authenticated)
	certificates.Get("/", handlerTransport.ListCertificatesHandler.Handle)
	certificates.Get("/:id", handlerTransport.GetCertificateHandler.Handle)

	router.Get(
		FrameStreamPath,
		authenticated,
		mw.WebsocketMiddleware.Middleware(),
		websocket.New(
			wsHandlerTransport.FrameStreamHandler.Handle,
			websocket.Config{
				HandshakeTimeout: 15 * time.Second,
				ReadBufferSize:   1 << 16,
				WriteBufferSize:  4096,
			},
		),
	)

	return nil
}
