package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	proctoringMocks "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring/mocks"
	infraCache "github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	cacheMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/cache/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCacheClient(t *testing.T) (infraCache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return infraCache.NewClientFromRedis(rdb), mr
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func sampleEnrollment(userID uuid.UUID) *proctoring.Enrollment {
	return &proctoring.Enrollment{
		UserID:       userID,
		Embedding:    pq.Float64Array{0.1, 0.2, 0.3},
		BoundingBox:  proctoring.BoundingBox{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2},
		RegisteredAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestCachedEnrollmentRepository_GetReadsThrough(t *testing.T) {
	client, mr := newCacheClient(t)
	inner := proctoringMocks.NewEnrollmentRepository(t)
	userID := uuid.New()
	enrollment := sampleEnrollment(userID)

	inner.EXPECT().Get(mock.Anything, userID).Return(enrollment, nil).Once()

	repo := NewCachedEnrollmentRepository(quietLogger(), inner, client, nil, time.Minute)

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, enrollment, got)

	raw, err := mr.Get(fmt.Sprintf(infraCache.EnrollmentKeyPattern, userID))
	require.NoError(t, err)
	var cached proctoring.Enrollment
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, []float64(cached.Embedding))

	again, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestCachedEnrollmentRepository_GetFromRedis(t *testing.T) {
	client, mr := newCacheClient(t)
	inner := proctoringMocks.NewEnrollmentRepository(t)
	userID := uuid.New()

	data, err := json.Marshal(sampleEnrollment(userID))
	require.NoError(t, err)
	require.NoError(t, mr.Set(fmt.Sprintf(infraCache.EnrollmentKeyPattern, userID), string(data)))

	repo := NewCachedEnrollmentRepository(quietLogger(), inner, client, nil, time.Minute)

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.InDelta(t, 0.4, got.BoundingBox.X, 1e-9)
}

func TestCachedEnrollmentRepository_NotFoundPassesThrough(t *testing.T) {
	client, _ := newCacheClient(t)
	inner := proctoringMocks.NewEnrollmentRepository(t)
	userID := uuid.New()

	inner.EXPECT().Get(mock.Anything, userID).Return(nil, domain.NewNotFoundError("face enrollment", userID))

	repo := NewCachedEnrollmentRepository(quietLogger(), inner, client, nil, time.Minute)

	_, err := repo.Get(context.Background(), userID)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestCachedEnrollmentRepository_RedisDownFallsBackToDatabase(t *testing.T) {
	client, mr := newCacheClient(t)
	mr.Close()
	inner := proctoringMocks.NewEnrollmentRepository(t)
	userID := uuid.New()
	enrollment := sampleEnrollment(userID)

	inner.EXPECT().Get(mock.Anything, userID).Return(enrollment, nil)

	repo := NewCachedEnrollmentRepository(quietLogger(), inner, client, nil, time.Minute)

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, enrollment, got)
}

func TestCachedEnrollmentRepository_SaveWritesThroughAndPublishes(t *testing.T) {
	client, mr := newCacheClient(t)
	inner := proctoringMocks.NewEnrollmentRepository(t)
	publisher := cacheMocks.NewEventPublisher(t)
	userID := uuid.New()
	enrollment := sampleEnrollment(userID)

	inner.EXPECT().Save(mock.Anything, enrollment).Return(nil)
	publisher.EXPECT().
		Publish(mock.Anything, event.EnrollmentUpdatedEvent{UserID: userID.String()}).
		Return(nil)

	repo := NewCachedEnrollmentRepository(quietLogger(), inner, client, publisher, time.Minute)

	require.NoError(t, repo.Save(context.Background(), enrollment))
	assert.True(t, mr.Exists(fmt.Sprintf(infraCache.EnrollmentKeyPattern, userID)))

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Same(t, enrollment, got)
}

func TestCachedEnrollmentRepository_SaveFailureSkipsCache(t *testing.T) {
	client, mr := newCacheClient(t)
	inner := proctoringMocks.NewEnrollmentRepository(t)
	userID := uuid.New()
	enrollment := sampleEnrollment(userID)

	inner.EXPECT().Save(mock.Anything, enrollment).Return(assert.AnError)

	repo := NewCachedEnrollmentRepository(quietLogger(), inner, client, nil, time.Minute)

	assert.ErrorIs(t, repo.Save(context.Background(), enrollment), assert.AnError)
	assert.False(t, mr.Exists(fmt.Sprintf(infraCache.EnrollmentKeyPattern, userID)))
}
