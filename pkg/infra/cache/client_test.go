package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisClient(t *testing.T) (Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewClientFromRedis(rdb), mr
}

func TestClient_SetGetDelete(t *testing.T) {
	c, mr := newMiniredisClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "enrollment:1", "payload", time.Minute))
	value, err := c.Get(ctx, "enrollment:1")
	require.NoError(t, err)
	assert.Equal(t, "payload", value)
	assert.Equal(t, time.Minute, mr.TTL("enrollment:1"))

	require.NoError(t, c.Delete(ctx, "enrollment:1"))
	_, err = c.Get(ctx, "enrollment:1")
	assert.True(t, IsMiss(err))
}

func TestClient_Ping(t *testing.T) {
	c, mr := newMiniredisClient(t)

	assert.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}

func TestClient_PublishPropagatesErrors(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewClientFromRedis(rdb)

	mock.ExpectPublish("trustproctor:events", []byte("msg")).SetErr(assert.AnError)

	err := c.Publish(context.Background(), "trustproctor:events", []byte("msg"))
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_TTLMaps(t *testing.T) {
	c, _ := newMiniredisClient(t)

	assert.Nil(t, c.GetTTLMap(EnrollmentTTLName))

	created := c.CreateTTLMap(EnrollmentTTLName, time.Minute)
	created.Set("user", "value")
	assert.Same(t, created, c.GetTTLMap(EnrollmentTTLName))

	c.ClearAllTTLMaps()
	assert.Equal(t, 0, created.Len())
}

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(redis.Nil))
	assert.False(t, IsMiss(assert.AnError))
	assert.False(t, IsMiss(nil))
}
