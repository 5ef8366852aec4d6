package subscriber

import (
	"context"
	"testing"
	"time"

	infraCache "github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type closerStub struct {
	closed []uuid.UUID
}

func (c *closerStub) CloseSession(sessionID uuid.UUID) {
	c.closed = append(c.closed, sessionID)
}

func TestSessionClosedEventSubscriber(t *testing.T) {
	closer := &closerStub{}
	sub := NewSessionClosedEventSubscriber(logrus.New(), closer)
	id := uuid.New()

	assert.NoError(t, sub.OnEvent(context.Background(), event.SessionClosedEvent{SessionID: id.String()}))
	assert.Equal(t, []uuid.UUID{id}, closer.closed)

	assert.Error(t, sub.OnEvent(context.Background(), event.SessionClosedEvent{SessionID: "nope"}))
	assert.Len(t, closer.closed, 1)
}

func TestEnrollmentUpdatedEventSubscriber(t *testing.T) {
	memory := infraCache.NewTTLMap(time.Minute)
	memory.Set("user-1", "cached")

	client := mocks.NewClient(t)
	client.EXPECT().GetTTLMap(infraCache.EnrollmentTTLName).Return(memory)

	sub := NewEnrollmentUpdatedEventSubscriber(logrus.New(), client)
	assert.NoError(t, sub.OnEvent(context.Background(), event.EnrollmentUpdatedEvent{UserID: "user-1"}))

	_, ok := memory.Get("user-1")
	assert.False(t, ok)
}

func TestEnrollmentUpdatedEventSubscriber_NoMemoryCache(t *testing.T) {
	client := mocks.NewClient(t)
	client.EXPECT().GetTTLMap(infraCache.EnrollmentTTLName).Return(nil)

	sub := NewEnrollmentUpdatedEventSubscriber(logrus.New(), client)
	assert.NoError(t, sub.OnEvent(context.Background(), event.EnrollmentUpdatedEvent{UserID: "user-1"}))
}
