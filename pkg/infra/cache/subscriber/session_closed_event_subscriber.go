package subscriber

import (
	"context"
	"fmt"

	infraCache "github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionCloser interface {
	CloseSession(sessionID uuid.UUID)
}

type SessionClosedEventSubscriber struct {
	logger *logrus.Logger
	closer SessionCloser
}

func NewSessionClosedEventSubscriber(
	logger *logrus.Logger,
	closer SessionCloser,
) infraCache.EventSubscriber[event.SessionClosedEvent] {
	return &SessionClosedEventSubscriber{
		logger: logger,
		closer: closer,
	}
}

func (s SessionClosedEventSubscriber) OnEvent(ctx context.Context, evt event.SessionClosedEvent) error {
	sessionID, err := uuid.Parse(evt.SessionID)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", evt.SessionID, err)
	}
	s.logger.WithField("session_id", sessionID).Debug("clearing detector state for closed session")
	s.closer.CloseSession(sessionID)
	return nil
}
