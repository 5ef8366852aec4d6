package metrics

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	domainTelemetry "github.com/NeuralTrust/TrustProctor/pkg/domain/telemetry"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics/metric_events"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueSize = 1000
	exportTimeout    = 10 * time.Second
)

//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore --with-expecter
type Worker interface {
	Shutdown()
	StartWorkers(n int)
	Process(events ...*metric_events.Event)
}

type worker struct {
	logger    *logrus.Logger
	exporters []domainTelemetry.Exporter
	taskChan  chan func()
	ctx       context.Context
	cancel    context.CancelFunc
	closed    atomic.Bool
}

func NewWorker(logger *logrus.Logger, exporters []domainTelemetry.Exporter) Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &worker{
		logger:    logger,
		exporters: exporters,
		taskChan:  make(chan func(), defaultQueueSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (m *worker) Shutdown() {
	if m.closed.Swap(true) {
		return
	}
	m.logger.Info("shutting down metrics workers")
	m.cancel()
	for _, exporter := range m.exporters {
		exporter.Close()
	}
	m.logger.Info("metrics workers stopped")
}

// Process records events in prometheus and hands them to the exporters off the caller's goroutine.
// Tasks are dropped when the queue is full.
func (m *worker) Process(events ...*metric_events.Event) {
	if len(events) == 0 {
		return
	}
	m.enqueueTask(func() {
		for _, evt := range events {
			m.registryMetricsToPrometheus(evt)
		}
	}, events[0].SessionID)

	if len(m.exporters) == 0 {
		return
	}
	m.enqueueTask(func() {
		m.registryMetricsToExporters(events)
	}, events[0].SessionID)
}

func (m *worker) registryMetricsToExporters(events []*metric_events.Event) {
	ctx, cancel := context.WithTimeout(m.ctx, exportTimeout)
	defer cancel()

	var failedExporters []string
	for _, exporter := range m.exporters {
		for _, evt := range events {
			if err := exporter.Handle(ctx, evt); err != nil {
				m.logger.WithFields(logrus.Fields{
					"session_id": evt.SessionID,
					"exporter":   exporter.Name(),
					"event":      evt.Type,
				}).WithError(err).Error("exporter failed")
				failedExporters = append(failedExporters, exporter.Name())
				break
			}
		}
	}
	if len(failedExporters) > 0 {
		m.logger.WithField("failedExporters", failedExporters).
			Warnf("%d exporters failed to handle proctoring events", len(failedExporters))
	}
}

func (m *worker) registryMetricsToPrometheus(evt *metric_events.Event) {
	switch {
	case evt.IsTypeFrame():
		prometheus.FramesAnalyzedTotal.WithLabelValues(evt.Result).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.AnalysisLatency.Observe(float64(evt.Latency))
		}
	case evt.IsTypeViolation():
		if evt.Violation != nil {
			prometheus.ViolationsTotal.WithLabelValues(evt.Violation.Type).Inc()
		}
	case evt.IsTypeSubmission():
		prometheus.SubmissionsTotal.WithLabelValues(evt.Recommendation).Inc()
	}
}

func (m *worker) StartWorkers(n int) {
	m.logger.WithField("workers", n).Info("starting metrics workers")
	for i := 0; i < n; i++ {
		go func() {
			for {
				select {
				case task := <-m.taskChan:
					m.run(task)
				case <-m.ctx.Done():
					return
				}
			}
		}()
	}
}

func (m *worker) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("panic", fmt.Sprint(r)).Error("metrics task panicked")
		}
	}()
	task()
}

func (m *worker) enqueueTask(task func(), sessionID string) {
	if m.closed.Load() {
		return
	}
	select {
	case m.taskChan <- task:
	default:
		m.logger.WithField("session_id", sessionID).
			Warn("taskChan is full, dropping metrics task")
	}
}

// StatusClass buckets an HTTP status code as 2xx, 4xx and so on.
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}
