package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_SetGet(t *testing.T) {
	m := NewTTLMap(time.Minute)

	m.Set("a", 1)
	value, ok := m.Get("a")

	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestTTLMap_Expiry(t *testing.T) {
	m := NewTTLMap(time.Minute)
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set("a", "v")
	now = now.Add(2 * time.Minute)

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_DeleteAndClear(t *testing.T) {
	m := NewTTLMap(time.Minute)
	m.Set("a", 1)
	m.Set("b", 2)

	m.Delete("a")
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Concurrent(t *testing.T) {
	m := NewTTLMap(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%5))
			m.Set(key, i)
			m.Get(key)
			if i%7 == 0 {
				m.Delete(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, m.Len(), 5)
}
