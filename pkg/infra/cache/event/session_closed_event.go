package event

// SessionClosedEvent is published when an exam session is submitted so every instance drops its detector streaks.
type SessionClosedEvent struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

func (e SessionClosedEvent) Type() string {
	return SessionClosedEventType
}
