package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemaphore(t *testing.T) {
	s := NewSemaphore(2)

	assert.True(t, s.Acquire())
	assert.True(t, s.Acquire())
	assert.False(t, s.Acquire())
	assert.Equal(t, 2, s.GetCurrentConnections())

	s.Release()
	assert.Equal(t, 1, s.GetCurrentConnections())
	assert.True(t, s.Acquire())

	s.Release()
	s.Release()
	s.Release()
	assert.Equal(t, 0, s.GetCurrentConnections())
}

func TestSlot_ReleaseOnce(t *testing.T) {
	s := NewSemaphore(2)
	first, ok := s.AcquireSlot()
	assert.True(t, ok)
	_, ok = s.AcquireSlot()
	assert.True(t, ok)
	_, ok = s.AcquireSlot()
	assert.False(t, ok)

	first.Release()
	first.Release()

	assert.Equal(t, 1, s.GetCurrentConnections())
}

func TestMessageBytes(t *testing.T) {
	assert.JSONEq(t, `{"type":"error","sequence":3,"error":"frame rate exceeded"}`,
		string(ErrorMessage(3, "frame rate exceeded").Bytes()))
}
