package request

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
)

type CreateExamRequest struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Duration     int               `json:"duration"`
	PassingScore int               `json:"passing_score"`
	Questions    []QuestionRequest `json:"questions"`
}

type QuestionRequest struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Points        int      `json:"points,omitempty"`
}

func (r *CreateExamRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if r.Duration < 0 {
		return fmt.Errorf("duration must be positive")
	}
	if r.PassingScore < 0 || r.PassingScore > 100 {
		return fmt.Errorf("passing_score must be between 0 and 100")
	}
	if len(r.Questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}

	ids := make(map[string]struct{}, len(r.Questions))
	for i, q := range r.Questions {
		if err := q.validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if q.ID == "" {
			continue
		}
		if _, dup := ids[q.ID]; dup {
			return fmt.Errorf("question %d: duplicate id %q", i+1, q.ID)
		}
		ids[q.ID] = struct{}{}
	}
	return nil
}

func (q QuestionRequest) validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question text is required")
	}
	if q.Points < 0 {
		return fmt.Errorf("points must be positive")
	}
	switch exam.QuestionType(q.Type) {
	case exam.QuestionMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple-choice questions need at least two options")
		}
		if q.CorrectAnswer == "" {
			return fmt.Errorf("correct_answer is required")
		}
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				return nil
			}
		}
		return fmt.Errorf("correct_answer must be one of the options")
	case exam.QuestionEssay:
		return nil
	default:
		return fmt.Errorf("type must be multiple-choice or essay")
	}
}

// ExamQuestions converts the request into exam questions. Defaults are applied by the exam itself.
func (r *CreateExamRequest) ExamQuestions() exam.QuestionsJSON {
	out := make(exam.QuestionsJSON, 0, len(r.Questions))
	for _, q := range r.Questions {
		out = append(out, exam.Question{
			ID:            q.ID,
			Question:      strings.TrimSpace(q.Question),
			Type:          exam.QuestionType(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		})
	}
	return out
}
