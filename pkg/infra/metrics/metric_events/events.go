package metric_events

import (
	"time"

	"github.com/google/uuid"
)

const (
	FrameType      = "frame"
	ViolationType  = "violation"
	SubmissionType = "submission"
)

const (
	FrameResultOK    = "ok"
	FrameResultError = "error"
)

type Event struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	ExamID    string `json:"exam_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Latency   int64  `json:"latency,omitempty"`

	// Frame params
	Result       string  `json:"result,omitempty"`
	FaceCount    int     `json:"face_count,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
	WarningCount int     `json:"warning_count,omitempty"`

	// Violation params
	Violation *ViolationEvent `json:"violation,omitempty"`

	// Submission params
	Score          float64 `json:"score,omitempty"`
	RiskScore      float64 `json:"risk_score,omitempty"`
	Recommendation string  `json:"recommendation,omitempty"`
	Passed         bool    `json:"passed,omitempty"`
}

type ViolationEvent struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Severity    float64 `json:"severity"`
	OccurredAt  int64   `json:"occurred_at"`
}

func newEvent(eventType string, sessionID uuid.UUID) *Event {
	return &Event{
		EventID:   uuid.New().String(),
		Type:      eventType,
		SessionID: sessionID.String(),
		Timestamp: time.Now().Unix(),
	}
}

func NewFrameEvent(sessionID uuid.UUID, result string, latency time.Duration) *Event {
	evt := newEvent(FrameType, sessionID)
	evt.Result = result
	evt.Latency = latency.Milliseconds()
	return evt
}

func NewViolationEvent(sessionID uuid.UUID, violation ViolationEvent) *Event {
	evt := newEvent(ViolationType, sessionID)
	evt.Violation = &violation
	return evt
}

func NewSubmissionEvent(sessionID uuid.UUID) *Event {
	return newEvent(SubmissionType, sessionID)
}

func (evt *Event) IsTypeFrame() bool {
	return evt.Type == FrameType
}

func (evt *Event) IsTypeViolation() bool {
	return evt.Type == ViolationType
}

func (evt *Event) IsTypeSubmission() bool {
	return evt.Type == SubmissionType
}
