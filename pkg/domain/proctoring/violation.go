package proctoring

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViolationType string

const (
	ViolationNoFaceDetected   ViolationType = "NO_FACE_DETECTED"
	ViolationMultiplePersons  ViolationType = "MULTIPLE_PERSONS"
	ViolationIdentityMismatch ViolationType = "IDENTITY_MISMATCH"
	ViolationLookingAway      ViolationType = "LOOKING_AWAY"
	ViolationAnalysisError    ViolationType = "ANALYSIS_ERROR"
	ViolationSystemError      ViolationType = "SYSTEM_ERROR"
)

func (t ViolationType) Valid() bool {
	switch t {
	case ViolationNoFaceDetected,
		ViolationMultiplePersons,
		ViolationIdentityMismatch,
		ViolationLookingAway,
		ViolationAnalysisError,
		ViolationSystemError:
		return true
	}
	return false
}

// IsError reports whether the violation was produced by a failed analysis rather than by the candidate.
func (t ViolationType) IsError() bool {
	return t == ViolationAnalysisError || t == ViolationSystemError
}

// Violation is a single proctoring event. Seq orders violations of a session in the order they were recorded.
type Violation struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Seq         int64         `json:"-" gorm:"autoIncrement;->"`
	SessionID   uuid.UUID     `json:"session_id" gorm:"type:uuid;not null;index"`
	Type        ViolationType `json:"type" gorm:"type:text;not null"`
	Description string        `json:"description" gorm:"type:text"`
	Severity    float64       `json:"severity" gorm:"not null"`
	Timestamp   time.Time     `json:"timestamp" gorm:"column:occurred_at;not null"`
}

func NewViolation(sessionID uuid.UUID, t ViolationType, description string, severity float64) Violation {
	if severity < 0 {
		severity = 0
	}
	return Violation{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Type:        t,
		Description: description,
		Severity:    severity,
		Timestamp:   time.Now(),
	}
}

func (v *Violation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	return nil
}

func (v *Violation) TableName() string {
	return "proctoring_violations"
}
