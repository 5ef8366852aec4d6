package facerecognition_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/facerecognition"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/httpx/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewHTTPClient(t *testing.T) {
	logger := newLogger()

	t.Run("With custom HTTP client", func(t *testing.T) {
		client := facerecognition.NewHTTPClient(
			logger,
			facerecognition.Credentials{BaseURL: "http://localhost"},
			facerecognition.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
		)
		assert.IsType(t, &facerecognition.HTTPClient{}, client)
	})

	t.Run("With default HTTP client", func(t *testing.T) {
		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: "http://localhost"})
		assert.NotNil(t, client)
	})
}

func TestHTTPClient_Detect(t *testing.T) {
	logger := newLogger()

	t.Run("Success", func(t *testing.T) {
		expected := domainProctoring.FrameDetectionResult{
			FaceDetected:  true,
			FaceCount:     1,
			Embeddings:    []float64{0.1, 0.2, 0.3},
			BoundingBoxes: []domainProctoring.BoundingBox{{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2}},
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/detect", r.URL.Path)
			assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
			assert.Equal(t, "test-token", r.Header.Get("Token"))
			body, _ := io.ReadAll(r.Body) //nolint:errcheck
			assert.Equal(t, []byte("jpeg-bytes"), body)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(expected) //nolint:errcheck
		}))
		defer server.Close()

		client := facerecognition.NewHTTPClient(
			logger,
			facerecognition.Credentials{BaseURL: server.URL + "/", Token: "test-token"},
		)

		result, err := client.Detect(context.Background(), []byte("jpeg-bytes"))

		require.NoError(t, err)
		assert.Equal(t, expected, *result)
	})

	t.Run("No face clears the detected flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"face_detected": true, "face_count": 0}`)) //nolint:errcheck
		}))
		defer server.Close()

		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: server.URL})

		result, err := client.Detect(context.Background(), []byte("jpeg-bytes"))

		require.NoError(t, err)
		assert.False(t, result.FaceDetected)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: server.URL})

		result, err := client.Detect(context.Background(), []byte("jpeg-bytes"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, facerecognition.ErrFailedDetectionCall)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("Invalid response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`)) //nolint:errcheck
		}))
		defer server.Close()

		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: server.URL})

		_, err := client.Detect(context.Background(), []byte("jpeg-bytes"))

		assert.ErrorIs(t, err, facerecognition.ErrInvalidResponse)
	})

	t.Run("Empty image", func(t *testing.T) {
		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: "http://localhost"})

		_, err := client.Detect(context.Background(), nil)

		assert.ErrorIs(t, err, facerecognition.ErrFailedDetectionCall)
	})

	t.Run("Transport error opens the breaker", func(t *testing.T) {
		httpClient := mocks.NewClient(t)
		httpClient.EXPECT().Do(mock.Anything).Return(nil, errors.New("connection refused")).Times(2)

		client := facerecognition.NewHTTPClient(
			logger,
			facerecognition.Credentials{BaseURL: "http://face"},
			facerecognition.WithHTTPClient(httpClient),
			facerecognition.WithCircuitBreaker(httpx.NewCircuitBreaker("face-test", time.Minute, 2, logger)),
		)

		for i := 0; i < 2; i++ {
			_, err := client.Detect(context.Background(), []byte("jpeg-bytes"))
			assert.ErrorContains(t, err, "connection refused")
		}

		_, err := client.Detect(context.Background(), []byte("jpeg-bytes"))
		assert.ErrorContains(t, err, "circuit breaker is open")
	})
}

func TestHTTPClient_Ping(t *testing.T) {
	logger := newLogger()

	t.Run("Healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: server.URL})

		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("Unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := facerecognition.NewHTTPClient(logger, facerecognition.Credentials{BaseURL: server.URL})

		assert.ErrorIs(t, client.Ping(context.Background()), facerecognition.ErrFailedDetectionCall)
	})
}
