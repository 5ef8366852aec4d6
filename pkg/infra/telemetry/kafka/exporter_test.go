package kafka_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics/metric_events"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/telemetry/kafka"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExporter_ValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		wantErr  string
	}{
		{
			name:     "valid",
			settings: map[string]interface{}{"host": "localhost", "port": "9092", "topic": "proctoring"},
		},
		{
			name:     "numeric port",
			settings: map[string]interface{}{"host": "localhost", "port": 9092, "topic": "proctoring"},
		},
		{
			name:     "missing host",
			settings: map[string]interface{}{"port": "9092", "topic": "proctoring"},
			wantErr:  "kafka host is required",
		},
		{
			name:     "missing port",
			settings: map[string]interface{}{"host": "localhost", "topic": "proctoring"},
			wantErr:  "kafka port is required",
		},
		{
			name:     "missing topic",
			settings: map[string]interface{}{"host": "localhost", "port": "9092"},
			wantErr:  "kafka topic is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := kafka.NewKafkaExporter().ValidateConfig(tt.settings)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestExporter_HandleWithoutProducer(t *testing.T) {
	exporter := kafka.NewKafkaExporter()

	err := exporter.Handle(context.Background(), metric_events.NewSubmissionEvent(uuid.New()))

	assert.ErrorIs(t, err, kafka.ErrProducerNotInitialized)
	assert.Equal(t, kafka.ExporterName, exporter.Name())
	exporter.Close()
}
