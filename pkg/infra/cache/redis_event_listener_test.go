package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type recordingSubscriber struct {
	calls     atomic.Int32
	sessionID atomic.Value
}

func (s *recordingSubscriber) OnEvent(_ context.Context, evt event.SessionClosedEvent) error {
	s.sessionID.Store(evt.SessionID)
	s.calls.Add(1)
	return nil
}

type failingSubscriber struct {
	calls atomic.Int32
}

func (s *failingSubscriber) OnEvent(_ context.Context, _ event.SessionClosedEvent) error {
	s.calls.Add(1)
	return assert.AnError
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestRedisEventListener_DeliversPublishedEvents(t *testing.T) {
	c, _ := newMiniredisClient(t)
	listener := NewRedisEventListener(quietLogger(), c, event.Registry)
	publisher := NewRedisEventPublisher(c, channel.ProctoringChannel)

	closed := &recordingSubscriber{}
	failing := &failingSubscriber{}
	RegisterEventSubscriber[event.SessionClosedEvent](listener, closed)
	RegisterEventSubscriber[event.SessionClosedEvent](listener, failing)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		listener.Listen(ctx, channel.ProctoringChannel)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_ = publisher.Publish(context.Background(), event.SessionClosedEvent{SessionID: "abc"})
		return closed.calls.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)

	assert.Equal(t, "abc", closed.sessionID.Load())
	assert.Positive(t, failing.calls.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestRedisEventListener_IgnoresUnknownAndMalformed(t *testing.T) {
	c, _ := newMiniredisClient(t)
	listener := NewRedisEventListener(quietLogger(), c, event.Registry).(*redisEventListener)
	closed := &recordingSubscriber{}
	RegisterEventSubscriber[event.SessionClosedEvent](listener, closed)

	listener.handleMessage(context.Background(), "not json")
	listener.handleMessage(context.Background(), `{"type":"Unknown","event":{}}`)
	listener.handleMessage(context.Background(), `{"type":"SessionClosedEvent","event":"oops"}`)

	assert.Zero(t, closed.calls.Load())

	listener.handleMessage(context.Background(), `{"type":"SessionClosedEvent","event":{"session_id":"s1"}}`)
	assert.Equal(t, int32(1), closed.calls.Load())
}

func TestRedisEventListener_DispatchesByType(t *testing.T) {
	c, _ := newMiniredisClient(t)
	listener := NewRedisEventListener(quietLogger(), c, event.Registry).(*redisEventListener)
	closed := &recordingSubscriber{}
	RegisterEventSubscriber[event.SessionClosedEvent](listener, closed)

	listener.handleMessage(context.Background(), `{"type":"EnrollmentUpdatedEvent","event":{"user_id":"u1"}}`)

	assert.Zero(t, closed.calls.Load())
}
