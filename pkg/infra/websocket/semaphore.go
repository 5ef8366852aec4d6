package websocket

import "sync"

type Semaphore struct {
	connections chan struct{}
}

func NewSemaphore(maxConnections int) *Semaphore {
	return &Semaphore{
		connections: make(chan struct{}, maxConnections),
	}
}

func (s *Semaphore) Acquire() bool {
	select {
	case s.connections <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Semaphore) Release() {
	select {
	case <-s.connections:
	default:
	}
}

func (s *Semaphore) GetCurrentConnections() int {
	return len(s.connections)
}

// Slot is one acquired connection. Releasing it more than once frees a single place.
type Slot struct {
	once      sync.Once
	semaphore *Semaphore
}

func (s *Semaphore) AcquireSlot() (*Slot, bool) {
	if !s.Acquire() {
		return nil, false
	}
	return &Slot{semaphore: s}, true
}

func (sl *Slot) Release() {
	sl.once.Do(sl.semaphore.Release)
}
