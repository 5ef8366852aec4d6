package facerecognition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	detectPath = "/v1/detect"
	healthPath = "/health"

	maxResponseSize = 1 << 20
)

type HTTPClient struct {
	client         httpx.Client
	logger         *logrus.Logger
	circuitBreaker httpx.CircuitBreaker
	credentials    Credentials
}

func NewHTTPClient(logger *logrus.Logger, credentials Credentials, opts ...HTTPClientOption) Client {
	c := &HTTPClient{
		client:         &http.Client{Timeout: 10 * time.Second},
		logger:         logger,
		circuitBreaker: httpx.NewCircuitBreaker("face-recognition", 30*time.Second, 5, logger),
		credentials: Credentials{
			BaseURL: strings.TrimRight(credentials.BaseURL, "/"),
			Token:   credentials.Token,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Detect(ctx context.Context, image []byte) (*domainProctoring.FrameDetectionResult, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrFailedDetectionCall)
	}

	var result *domainProctoring.FrameDetectionResult
	err := c.circuitBreaker.Execute(func() error {
		var execErr error
		result, execErr = c.executeDetectRequest(ctx, image)
		return execErr
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.WithError(err).Error("face detection failed (circuit breaker)")
		}
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) executeDetectRequest(
	ctx context.Context,
	image []byte,
) (*domainProctoring.FrameDetectionResult, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.credentials.BaseURL+detectPath,
		bytes.NewReader(image),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create detect request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")
	req.Header.Set("Accept", "application/json")
	if c.credentials.Token != "" {
		req.Header.Set("Token", c.credentials.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call face recognition service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status_code", resp.StatusCode).Error("face recognition service returned non-200 status")
		return nil, fmt.Errorf("%w: status %d", ErrFailedDetectionCall, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("face recognition response read error: %w", err)
	}

	var result domainProctoring.FrameDetectionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if result.FaceCount < 0 {
		return nil, fmt.Errorf("%w: negative face count", ErrInvalidResponse)
	}
	if result.FaceCount == 0 {
		result.FaceDetected = false
	}
	return &result, nil
}

// Ping bypasses the breaker so a health check never trips it.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.credentials.BaseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}
	if c.credentials.Token != "" {
		req.Header.Set("Token", c.credentials.Token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach face recognition service: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health status %d", ErrFailedDetectionCall, resp.StatusCode)
	}
	return nil
}
