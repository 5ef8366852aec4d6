package proctoring

import "sync/atomic"

type State string

const (
	StateUninitialized State = "uninitialized"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

type lifecycle struct {
	state atomic.Value
}

func newLifecycle() *lifecycle {
	l := &lifecycle{}
	l.state.Store(StateUninitialized)
	return l
}

func (l *lifecycle) get() State {
	s, ok := l.state.Load().(State)
	if !ok {
		return StateUninitialized
	}
	return s
}

func (l *lifecycle) set(s State) {
	l.state.Store(s)
}
