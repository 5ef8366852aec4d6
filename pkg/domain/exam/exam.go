package exam

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultDurationMinutes = 60
	DefaultPassingScore    = 70
	DefaultQuestionPoints  = 10
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionEssay          QuestionType = "essay"
)

type Question struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Points        int          `json:"points"`
}

func (q Question) PointsOrDefault() int {
	if q.Points <= 0 {
		return DefaultQuestionPoints
	}
	return q.Points
}

type QuestionsJSON []Question

func (q QuestionsJSON) Value() (driver.Value, error) {
	if q == nil {
		return nil, nil
	}
	return json.Marshal(q)
}

func (q *QuestionsJSON) Scan(value interface{}) error {
	if value == nil {
		*q = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal QuestionsJSON value: %v", value)
	}
	return json.Unmarshal(bytes, q)
}

type Exam struct {
	ID           uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string        `json:"title" gorm:"type:text;not null"`
	Description  string        `json:"description" gorm:"type:text"`
	Duration     int           `json:"duration"`
	PassingScore int           `json:"passing_score"`
	Questions    QuestionsJSON `json:"questions" gorm:"type:jsonb"`
	CreatorID    uuid.UUID     `json:"creator_id" gorm:"type:uuid"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (e *Exam) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (e *Exam) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Exam) TableName() string {
	return "exams"
}

// ApplyDefaults fills duration, passing score, question IDs and points the way exam authors expect.
func (e *Exam) ApplyDefaults() {
	if e.Duration <= 0 {
		e.Duration = DefaultDurationMinutes
	}
	if e.PassingScore <= 0 {
		e.PassingScore = DefaultPassingScore
	}
	for i := range e.Questions {
		if e.Questions[i].ID == "" {
			e.Questions[i].ID = uuid.NewString()
		}
		if e.Questions[i].Points <= 0 {
			e.Questions[i].Points = DefaultQuestionPoints
		}
	}
}

// Public returns a copy of the exam safe to send to candidates.
func (e *Exam) Public() *Exam {
	out := *e
	out.Questions = make(QuestionsJSON, len(e.Questions))
	for i, q := range e.Questions {
		q.CorrectAnswer = ""
		out.Questions[i] = q
	}
	return &out
}

func (e *Exam) Question(id string) (Question, bool) {
	for _, q := range e.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
