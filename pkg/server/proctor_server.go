package server

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustProctor/pkg/config"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustProctor/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ProctorServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ProctorServer struct {
		*BaseServer
	}
)

func NewProctorServer(di ProctorServerDI) *ProctorServer {
	if di.Config.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{
			EnableLatency: di.Config.Metrics.EnableLatency,
			EnableStreams: di.Config.Metrics.EnableStreams,
		})
	}

	return &ProctorServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *ProctorServer) Run() error {
	s.setupMetricsEndpoint()
	s.Logger.WithField("port", s.Config.Server.Port).Info("starting proctoring server")
	return s.Router.Listen(fmt.Sprintf(":%d", s.Config.Server.Port))
}

func (s *ProctorServer) Shutdown() error {
	return errors.Join(s.Router.Shutdown(), s.shutdownMetrics())
}
