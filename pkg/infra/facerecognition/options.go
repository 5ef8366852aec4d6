package facerecognition

import "github.com/NeuralTrust/TrustProctor/pkg/infra/httpx"

type HTTPClientOption func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client httpx.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		if client != nil {
			c.client = client
		}
	}
}

func WithCircuitBreaker(breaker httpx.CircuitBreaker) HTTPClientOption {
	return func(c *HTTPClient) {
		if breaker != nil {
			c.circuitBreaker = breaker
		}
	}
}
