package httpx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func newTestBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewCircuitBreaker(name, timeout, maxFailures, logger)
}

func TestNewCircuitBreaker(t *testing.T) {
	tests := []struct {
		name        string
		breakerName string
		timeout     time.Duration
		maxFailures uint32
	}{
		{name: "face recognition breaker", breakerName: "face-recognition", timeout: 30 * time.Second, maxFailures: 5},
		{name: "zero timeout", breakerName: "zero-timeout", timeout: 0, maxFailures: 1},
		{name: "nil logger", breakerName: "no-logger", timeout: time.Second, maxFailures: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker(tt.breakerName, tt.timeout, tt.maxFailures, nil)

			wrapper, ok := breaker.(*circuitBreakerWrapper)
			assert.True(t, ok)
			assert.Equal(t, tt.breakerName, wrapper.breaker.Name())
			assert.False(t, breaker.Open())
		})
	}
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	breaker := newTestBreaker("success", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCircuitBreaker_Execute_WrapsError(t *testing.T) {
	breaker := newTestBreaker("detect", 30*time.Second, 3)
	detectErr := errors.New("canister unreachable")

	err := breaker.Execute(func() error {
		return detectErr
	})

	assert.ErrorIs(t, err, detectErr)
	assert.Contains(t, err.Error(), "breaker (detect)")
}

func TestCircuitBreaker_Execute_RecoversPanic(t *testing.T) {
	breaker := newTestBreaker("panic", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		panic("malformed response")
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: malformed response")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := newTestBreaker("open", 30*time.Second, 2)

	for i := 0; i < 2; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}

	assert.True(t, breaker.Open())
	err := breaker.Execute(func() error { return nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestCircuitBreaker_ClosesAfterTrialCall(t *testing.T) {
	breaker := newTestBreaker("recovery", 50*time.Millisecond, 1)

	assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	assert.True(t, breaker.Open())

	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.False(t, breaker.Open())
}

func TestCircuitBreaker_IgnoresCanceledCalls(t *testing.T) {
	breaker := newTestBreaker("canceled", 30*time.Second, 2)

	for i := 0; i < 5; i++ {
		err := breaker.Execute(func() error {
			return fmt.Errorf("detect request: %w", context.Canceled)
		})
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.False(t, breaker.Open())

	assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	assert.False(t, breaker.Open())
	assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	assert.True(t, breaker.Open())
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	breaker := newTestBreaker("concurrent", 30*time.Second, 100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			err := breaker.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
			if err != nil {
				assert.Contains(t, err.Error(), "concurrent")
			}
		}(i)
	}
	wg.Wait()
}
