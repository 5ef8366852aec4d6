package proctoring

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Enrollment is the reference face of a candidate, captured before the exam.
type Enrollment struct {
	UserID       uuid.UUID       `json:"user_id" gorm:"type:uuid;primaryKey"`
	Embedding    pq.Float64Array `json:"embedding" gorm:"type:double precision[];not null"`
	BoundingBox  BoundingBox     `json:"bounding_box" gorm:"embedded;embeddedPrefix:box_"`
	RegisteredAt time.Time       `json:"registered_at" gorm:"not null"`
}

func NewEnrollment(userID uuid.UUID, detection *FrameDetectionResult) *Enrollment {
	e := &Enrollment{
		UserID:       userID,
		Embedding:    append(pq.Float64Array(nil), detection.Embeddings...),
		RegisteredAt: time.Now(),
	}
	if len(detection.BoundingBoxes) > 0 {
		e.BoundingBox = detection.BoundingBoxes[0]
	}
	return e
}

func (e *Enrollment) BeforeSave(tx *gorm.DB) error {
	if e.RegisteredAt.IsZero() {
		e.RegisteredAt = time.Now()
	}
	return nil
}

func (e *Enrollment) TableName() string {
	return "face_enrollments"
}
