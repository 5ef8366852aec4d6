package metrics

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	domainTelemetry "github.com/NeuralTrust/TrustProctor/pkg/domain/telemetry"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/telemetry/mocks"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics/metric_events"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWorker_ProcessExportsEvents(t *testing.T) {
	sessionID := uuid.New()
	events := []*metric_events.Event{
		metric_events.NewFrameEvent(sessionID, metric_events.FrameResultOK, 40*time.Millisecond),
		metric_events.NewViolationEvent(sessionID, metric_events.ViolationEvent{Type: "MULTIPLE_PERSONS", Severity: 0.95}),
	}

	exported := make(chan *metric_events.Event, len(events))
	exporter := mocks.NewExporter(t)
	exporter.EXPECT().Handle(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, evt *metric_events.Event) error {
			exported <- evt
			return nil
		}).Times(len(events))
	exporter.EXPECT().Close().Return()

	before := testutil.ToFloat64(prometheus.ViolationsTotal.WithLabelValues("MULTIPLE_PERSONS"))

	w := NewWorker(newTestLogger(), []domainTelemetry.Exporter{exporter})
	w.StartWorkers(1)
	w.Process(events...)

	for i := range events {
		select {
		case evt := <-exported:
			assert.Equal(t, events[i].EventID, evt.EventID)
		case <-time.After(2 * time.Second):
			t.Fatal("event was not exported")
		}
	}
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(prometheus.ViolationsTotal.WithLabelValues("MULTIPLE_PERSONS")) == before+1
	}, 2*time.Second, 10*time.Millisecond)

	w.Shutdown()
	w.Shutdown()
}

func TestWorker_ExporterFailureStopsBatch(t *testing.T) {
	sessionID := uuid.New()
	done := make(chan struct{})
	exporter := mocks.NewExporter(t)
	exporter.EXPECT().Name().Return("kafka")
	exporter.EXPECT().Handle(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *metric_events.Event) error {
			close(done)
			return errors.New("broker down")
		}).Once()
	exporter.EXPECT().Close().Return()

	w := NewWorker(newTestLogger(), []domainTelemetry.Exporter{exporter})
	w.StartWorkers(1)
	w.Process(
		metric_events.NewSubmissionEvent(sessionID),
		metric_events.NewSubmissionEvent(sessionID),
	)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("exporter was not called")
	}
	time.Sleep(50 * time.Millisecond)
	w.Shutdown()
}

func TestWorker_ProcessAfterShutdownIsIgnored(t *testing.T) {
	w := NewWorker(newTestLogger(), nil)
	w.Shutdown()

	assert.NotPanics(t, func() {
		w.Process(metric_events.NewSubmissionEvent(uuid.New()))
	})
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(200))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(503))
	assert.Equal(t, "5xx", StatusClass(0))
}
