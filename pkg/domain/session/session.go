package session

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type AnswersJSON []Answer

func (a AnswersJSON) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *AnswersJSON) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal AnswersJSON value: %v", value)
	}
	return json.Unmarshal(bytes, a)
}

func (a AnswersJSON) Find(questionID string) (Answer, bool) {
	for _, answer := range a {
		if answer.QuestionID == questionID {
			return answer, true
		}
	}
	return Answer{}, false
}

type Biodata struct {
	FullName    string `json:"full_name"`
	StudentID   string `json:"student_id"`
	PhoneNumber string `json:"phone_number"`
}

type Device struct {
	Device  string `json:"device"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Locale  string `json:"locale"`
}

type ExamSession struct {
	ID                  uuid.UUID                 `json:"id" gorm:"type:uuid;primaryKey"`
	ExamID              uuid.UUID                 `json:"exam_id" gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID                 `json:"user_id" gorm:"type:uuid;not null;index"`
	Status              Status                    `json:"status" gorm:"type:text;not null"`
	Answers             AnswersJSON               `json:"answers" gorm:"type:jsonb"`
	RawScore            float64                   `json:"raw_score"`
	Score               float64                   `json:"score"`
	RiskScore           float64                   `json:"risk_score"`
	Recommendation      proctoring.Recommendation `json:"recommendation" gorm:"type:text"`
	WarningCount        int                       `json:"warning_count"`
	Passed              bool                      `json:"passed"`
	CertificateEligible bool                      `json:"certificate_eligible"`
	CertificateID       *string                   `json:"certificate_id,omitempty"`
	Biodata             Biodata                   `json:"biodata" gorm:"embedded;embeddedPrefix:biodata_"`
	Device              Device                    `json:"device" gorm:"embedded;embeddedPrefix:device_"`
	StartedAt           time.Time                 `json:"started_at"`
	CompletedAt         *time.Time                `json:"completed_at,omitempty"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

func NewExamSession(examID, userID uuid.UUID, biodata Biodata, device Device) *ExamSession {
	return &ExamSession{
		ID:             uuid.New(),
		ExamID:         examID,
		UserID:         userID,
		Status:         StatusInProgress,
		Recommendation: proctoring.RecommendationPass,
		Biodata:        biodata,
		Device:         device,
		StartedAt:      time.Now(),
	}
}

func (s *ExamSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (s *ExamSession) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}

func (s *ExamSession) TableName() string {
	return "exam_sessions"
}

func (s *ExamSession) InProgress() bool {
	return s.Status == StatusInProgress
}

// ProctoringSnapshot is the slice of a session refreshed on every recorded violation.
type ProctoringSnapshot struct {
	WarningCount   int
	RiskScore      float64
	Recommendation proctoring.Recommendation
}
