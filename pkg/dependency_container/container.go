package dependency_container

import (
	"fmt"
	"reflect"

	"github.com/NeuralTrust/TrustProctor/pkg/app/auth"
	"github.com/NeuralTrust/TrustProctor/pkg/app/certificate"
	"github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/app/telemetry"
	"github.com/NeuralTrust/TrustProctor/pkg/config"
	domainTelemetry "github.com/NeuralTrust/TrustProctor/pkg/domain/telemetry"
	handlers "github.com/NeuralTrust/TrustProctor/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TrustProctor/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/subscriber"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/database"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/facerecognition"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/imaging"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/ratelimit"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/repository"
	infraTelemetry "github.com/NeuralTrust/TrustProctor/pkg/infra/telemetry"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/telemetry/kafka"
	"github.com/NeuralTrust/TrustProctor/pkg/server/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Cache               cache.Client
	RedisListener       cache.EventListener
	RedisPublisher      cache.EventPublisher
	EventsChannel       channel.Channel
	ProctoringService   proctoring.Service
	MetricsWorker       metrics.Worker
	FrameLimiter        ratelimit.FrameLimiter
	JWTManager          jwt.Manager
	HandlerTransport    handlers.HandlerTransport
	WSHandlerTransport  wsHandlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
}

type ContainerDI struct {
	Cfg            *config.Config
	Logger         *logrus.Logger
	DB             *database.DB
	EventsRegistry map[string]reflect.Type
	EventsChannel  channel.Channel
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %v", err)
	}
	cacheInstance.CreateTTLMap(cache.EnrollmentTTLName, cfg.Proctoring.EnrollmentCacheTTL)

	eventsChannel := di.EventsChannel
	if eventsChannel == "" {
		eventsChannel = channel.ProctoringChannel
	}
	redisPublisher := cache.NewRedisEventPublisher(cacheInstance, eventsChannel)
	redisListener := cache.NewRedisEventListener(logger, cacheInstance, di.EventsRegistry)

	// telemetry
	exporterLocator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
	)
	exporters, err := buildExporters(cfg, telemetry.NewExportersBuilder(exporterLocator))
	if err != nil {
		return nil, err
	}
	metricsWorker := metrics.NewWorker(logger, exporters)

	// repositories
	userRepository := repository.NewUserRepository(di.DB.DB)
	examRepository := repository.NewExamRepository(di.DB.DB)
	sessionRepository := repository.NewSessionRepository(di.DB.DB)
	violationRepository := repository.NewViolationRepository(di.DB.DB)
	certificateRepository := repository.NewCertificateRepository(di.DB.DB)
	enrollmentRepository := repository.NewCachedEnrollmentRepository(
		logger,
		repository.NewEnrollmentRepository(di.DB.DB),
		cacheInstance,
		redisPublisher,
		cfg.Proctoring.EnrollmentCacheTTL,
	)

	// face recognition
	faceClient := facerecognition.NewHTTPClient(
		logger,
		facerecognition.Credentials{
			BaseURL: cfg.FaceRecognition.BaseURL,
			Token:   cfg.FaceRecognition.Token,
		},
		facerecognition.WithHTTPClient(httpx.NewFastHTTPClient(
			httpx.WithTimeout(cfg.FaceRecognition.Timeout),
		)),
		facerecognition.WithCircuitBreaker(httpx.NewCircuitBreaker(
			"face-recognition",
			cfg.FaceRecognition.BreakerTimeout,
			cfg.FaceRecognition.MaxFailures,
			logger,
		)),
	)

	// proctoring core
	thresholds := proctoring.DefaultThresholds()
	if cfg.Proctoring.NoFaceThreshold > 0 {
		thresholds.NoFaceStreak = cfg.Proctoring.NoFaceThreshold
	}
	if cfg.Proctoring.LookAwayThreshold > 0 {
		thresholds.LookAwayStreak = cfg.Proctoring.LookAwayThreshold
	}
	if cfg.Proctoring.GazeDistance > 0 {
		thresholds.GazeDistance = cfg.Proctoring.GazeDistance
	}
	if cfg.Proctoring.IdentityThreshold > 0 {
		thresholds.IdentitySimilarity = cfg.Proctoring.IdentityThreshold
	}
	proctoringService := proctoring.NewService(logger, proctoring.ServiceDeps{
		Detector:    proctoring.NewDetector(logger, thresholds),
		Ledger:      proctoring.NewLedger(logger, violationRepository, sessionRepository),
		Faces:       faceClient,
		Normalizer:  imaging.NewNormalizer(cfg.Proctoring.FrameMaxWidth),
		Enrollments: enrollmentRepository,
		Sessions:    sessionRepository,
		Metrics:     metricsWorker,
	}, proctoring.ServiceConfig{
		MaxWarnings:       cfg.Proctoring.MaxWarnings,
		InitRetryInterval: cfg.FaceRecognition.RetryInterval,
	})

	// subscribers
	cache.RegisterEventSubscriber[event.SessionClosedEvent](
		redisListener,
		subscriber.NewSessionClosedEventSubscriber(logger, proctoringService),
	)
	cache.RegisterEventSubscriber[event.EnrollmentUpdatedEvent](
		redisListener,
		subscriber.NewEnrollmentUpdatedEventSubscriber(logger, cacheInstance),
	)

	// use cases
	jwtManager := jwt.NewJwtManager(&cfg.Server)
	registrar := auth.NewRegistrar(logger, userRepository)
	authenticator := auth.NewAuthenticator(logger, userRepository, jwtManager)

	issuer := certificate.NewIssuer(logger, certificateRepository, certificate.IssuerConfig{
		Issuer:              cfg.Certificate.Issuer,
		VerificationBaseURL: cfg.Certificate.VerificationBaseURL,
	})
	verifier := certificate.NewVerifier(logger, certificateRepository)

	examCreator := exam.NewCreator(logger, examRepository)
	examFinder := exam.NewFinder(logger, examRepository)
	examStarter := exam.NewStarter(logger, examRepository, sessionRepository)
	examSubmitter := exam.NewSubmitter(logger, exam.SubmitterDeps{
		Exams:      examRepository,
		Sessions:   sessionRepository,
		Users:      userRepository,
		Proctoring: proctoringService,
		Issuer:     issuer,
		Publisher:  redisPublisher,
		Metrics:    metricsWorker,
	})
	resultFinder := exam.NewResultFinder(logger, examRepository, sessionRepository, proctoringService)

	frameLimiter := ratelimit.NewFrameLimiter(cfg.Proctoring.FramesPerSecond, cfg.Proctoring.FrameBurst, nil)

	handlerTransport := &handlers.HandlerTransportDTO{
		HealthHandler: handlers.NewHealthHandler(logger, map[string]handlers.Pinger{
			"database":         di.DB,
			"redis":            cacheInstance,
			"face_recognition": faceClient,
		}),
		GetVersionHandler: handlers.NewGetVersionHandler(logger),

		RegisterUserHandler: handlers.NewRegisterUserHandler(logger, registrar),
		LoginHandler:        handlers.NewLoginHandler(logger, authenticator),

		ListExamsHandler:   handlers.NewListExamsHandler(logger, examFinder),
		GetExamHandler:     handlers.NewGetExamHandler(logger, examFinder),
		CreateExamHandler:  handlers.NewCreateExamHandler(logger, examCreator),
		StartExamHandler:   handlers.NewStartExamHandler(logger, examStarter),
		SubmitExamHandler:  handlers.NewSubmitExamHandler(logger, examSubmitter),
		ExamHistoryHandler: handlers.NewExamHistoryHandler(logger, resultFinder),
		ExamResultHandler:  handlers.NewExamResultHandler(logger, resultFinder),

		RegisterFaceHandler:     handlers.NewRegisterFaceHandler(logger, proctoringService),
		AnalyzeFrameHandler:     handlers.NewAnalyzeFrameHandler(logger, proctoringService),
		SessionReportHandler:    handlers.NewSessionReportHandler(logger, proctoringService, sessionRepository),
		ProctoringHealthHandler: handlers.NewProctoringHealthHandler(logger, proctoringService),

		GetCertificateHandler:    handlers.NewGetCertificateHandler(logger, verifier),
		VerifyCertificateHandler: handlers.NewVerifyCertificateHandler(logger, verifier),
		ListCertificatesHandler:  handlers.NewListCertificatesHandler(logger, verifier),
	}

	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		FrameStreamHandler: wsHandlers.NewFrameStreamHandler(logger, proctoringService, frameLimiter),
	}

	middlewareTransport := &middleware.Transport{
		RecoverMiddleware:   middleware.NewPanicRecoverMiddleware(logger),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger, cfg.Metrics.Enabled),
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, jwtManager),
		AuthorMiddleware:    middleware.NewAuthorMiddleware(logger),
		FrameRateMiddleware: middleware.NewFrameRateMiddleware(logger, frameLimiter),
		WebsocketMiddleware: middleware.NewWebsocketMiddleware(logger, cfg.WebSocket.MaxConnections),
	}

	return &Container{
		Cache:               cacheInstance,
		RedisListener:       redisListener,
		RedisPublisher:      redisPublisher,
		EventsChannel:       eventsChannel,
		ProctoringService:   proctoringService,
		MetricsWorker:       metricsWorker,
		FrameLimiter:        frameLimiter,
		JWTManager:          jwtManager,
		HandlerTransport:    handlerTransport,
		WSHandlerTransport:  wsHandlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

func buildExporters(cfg *config.Config, builder telemetry.ExportersBuilder) ([]domainTelemetry.Exporter, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	exporters, err := builder.Build([]domainTelemetry.ExporterConfig{{
		Name:     kafka.ExporterName,
		Settings: cfg.Kafka.Settings,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry exporters: %w", err)
	}
	return exporters, nil
}
