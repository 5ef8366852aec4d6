package subscriber

import (
	"context"

	infraCache "github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type EnrollmentUpdatedEventSubscriber struct {
	logger      *logrus.Logger
	memoryCache *infraCache.TTLMap
}

func NewEnrollmentUpdatedEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
) infraCache.EventSubscriber[event.EnrollmentUpdatedEvent] {
	return &EnrollmentUpdatedEventSubscriber{
		logger:      logger,
		memoryCache: c.GetTTLMap(infraCache.EnrollmentTTLName),
	}
}

func (s EnrollmentUpdatedEventSubscriber) OnEvent(ctx context.Context, evt event.EnrollmentUpdatedEvent) error {
	if s.memoryCache == nil {
		return nil
	}
	s.logger.WithField("user_id", evt.UserID).Debug("invalidating enrollment memory cache")
	s.memoryCache.Delete(evt.UserID)
	return nil
}
