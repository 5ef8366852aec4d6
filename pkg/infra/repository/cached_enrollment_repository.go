package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	infraCache "github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultEnrollmentCacheTTL = time.Hour

// cachedEnrollmentRepository reads through an in-process TTL map and Redis before hitting the database.
type cachedEnrollmentRepository struct {
	logger    *logrus.Logger
	next      proctoring.EnrollmentRepository
	cache     infraCache.Client
	memory    *infraCache.TTLMap
	publisher infraCache.EventPublisher
	ttl       time.Duration
}

func NewCachedEnrollmentRepository(
	logger *logrus.Logger,
	next proctoring.EnrollmentRepository,
	cache infraCache.Client,
	publisher infraCache.EventPublisher,
	ttl time.Duration,
) proctoring.EnrollmentRepository {
	if ttl <= 0 {
		ttl = DefaultEnrollmentCacheTTL
	}
	memory := cache.GetTTLMap(infraCache.EnrollmentTTLName)
	if memory == nil {
		memory = cache.CreateTTLMap(infraCache.EnrollmentTTLName, ttl)
	}
	return &cachedEnrollmentRepository{
		logger:    logger,
		next:      next,
		cache:     cache,
		memory:    memory,
		publisher: publisher,
		ttl:       ttl,
	}
}

func (r *cachedEnrollmentRepository) Save(ctx context.Context, enrollment *proctoring.Enrollment) error {
	if err := r.next.Save(ctx, enrollment); err != nil {
		return err
	}
	key := enrollment.UserID.String()
	r.memory.Set(key, enrollment)
	if err := r.store(ctx, enrollment); err != nil {
		r.logger.WithError(err).WithField("user_id", key).Warn("failed to cache face enrollment")
		_ = r.cache.Delete(ctx, fmt.Sprintf(infraCache.EnrollmentKeyPattern, key))
	}
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, event.EnrollmentUpdatedEvent{UserID: key}); err != nil {
			r.logger.WithError(err).Warn("failed to publish enrollment update")
		}
	}
	return nil
}

func (r *cachedEnrollmentRepository) Get(ctx context.Context, userID uuid.UUID) (*proctoring.Enrollment, error) {
	key := userID.String()
	if value, ok := r.memory.Get(key); ok {
		if enrollment, ok := value.(*proctoring.Enrollment); ok {
			return enrollment, nil
		}
	}

	raw, err := r.cache.Get(ctx, fmt.Sprintf(infraCache.EnrollmentKeyPattern, key))
	if err == nil {
		var enrollment proctoring.Enrollment
		if jsonErr := json.Unmarshal([]byte(raw), &enrollment); jsonErr == nil {
			r.memory.Set(key, &enrollment)
			return &enrollment, nil
		}
		r.logger.WithField("user_id", key).Warn("discarding malformed cached enrollment")
	} else if !infraCache.IsMiss(err) {
		r.logger.WithError(err).Warn("enrollment cache unavailable, reading from database")
	}

	enrollment, err := r.next.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.memory.Set(key, enrollment)
	if err := r.store(ctx, enrollment); err != nil {
		r.logger.WithError(err).WithField("user_id", key).Warn("failed to cache face enrollment")
	}
	return enrollment, nil
}

func (r *cachedEnrollmentRepository) store(ctx context.Context, enrollment *proctoring.Enrollment) error {
	data, err := json.Marshal(enrollment)
	if err != nil {
		return err
	}
	return r.cache.Set(ctx, fmt.Sprintf(infraCache.EnrollmentKeyPattern, enrollment.UserID), string(data), r.ttl)
}
