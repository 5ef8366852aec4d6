package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/config"
	"github.com/NeuralTrust/TrustProctor/pkg/dependency_container"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	infraLogger "github.com/NeuralTrust/TrustProctor/pkg/infra/logger"
	"github.com/NeuralTrust/TrustProctor/pkg/server"
	"github.com/NeuralTrust/TrustProctor/pkg/server/router"
	"github.com/NeuralTrust/TrustProctor/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the proctoring API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
	return cmd
}

func serve(ctx context.Context, skipMigrations bool) error {
	logger, closeLogger := infraLogger.NewLogger("proctor")
	defer closeLogger()

	logger.WithField("version", version.Version).Info("starting")

	cfg, err := loadConfig()
	if err != nil {
		logger.WithError(err).Error("failed to load config")
		return err
	}

	db, err := openDatabase(logger, cfg)
	if err != nil {
		logger.WithError(err).Error("database unavailable")
		return err
	}
	defer db.Close()

	if !skipMigrations {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:            cfg,
		Logger:         logger,
		DB:             db,
		EventsRegistry: event.Registry,
	})
	if err != nil {
		logger.WithError(err).Error("failed to build dependencies")
		return err
	}
	defer container.MetricsWorker.Shutdown()

	container.MetricsWorker.StartWorkers(cfg.Metrics.Workers)

	initCtx, cancelInit := context.WithTimeout(ctx, cfg.FaceRecognition.InitTimeout)
	initErr := container.ProctoringService.Initialize(initCtx)
	cancelInit()
	if initErr != nil {
		logger.WithError(initErr).Warn("face recognition unavailable at startup, retrying in background")
	}

	srv := server.NewProctorServer(server.ProctorServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(
				container.MiddlewareTransport,
				container.HandlerTransport,
				container.WSHandlerTransport,
				cfg,
			),
		},
	})

	g, gctx := errgroup.WithContext(ctx)
	if initErr != nil {
		g.Go(func() error {
			retryInitialize(gctx, logger, container.ProctoringService, cfg.FaceRecognition)
			return nil
		})
	}
	g.Go(func() error {
		container.RedisListener.Listen(gctx, container.EventsChannel)
		return nil
	})
	g.Go(func() error {
		if err := srv.Run(); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		done := make(chan error, 1)
		go func() { done <- srv.Shutdown() }()
		select {
		case err := <-done:
			return err
		case <-time.After(shutdownTimeout):
			return errors.New("server shutdown timed out")
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("server stopped with error")
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// retryInitialize keeps initializing the proctoring service until it is ready or ctx is done.
func retryInitialize(
	ctx context.Context,
	logger *logrus.Logger,
	service proctoring.Service,
	cfg config.FaceRecognitionConfig,
) {
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = proctoring.DefaultInitRetryInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if service.State() == proctoring.StateReady {
			return
		}
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.InitTimeout)
		err := service.Initialize(attemptCtx)
		cancel()
		if err == nil {
			return
		}
		logger.WithError(err).Debug("face recognition still unavailable")
	}
}
