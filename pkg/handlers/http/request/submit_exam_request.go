package request

import (
	"fmt"

	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/google/uuid"
)

type SubmitExamRequest struct {
	SessionID string          `json:"sessionId"`
	Answers   []AnswerRequest `json:"answers"`
}

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

func (r *SubmitExamRequest) Validate() error {
	if _, err := uuid.Parse(r.SessionID); err != nil {
		return fmt.Errorf("sessionId must be a valid UUID")
	}
	seen := make(map[string]struct{}, len(r.Answers))
	for i, a := range r.Answers {
		if a.QuestionID == "" {
			return fmt.Errorf("answer %d: questionId is required", i+1)
		}
		if _, dup := seen[a.QuestionID]; dup {
			return fmt.Errorf("answer %d: duplicate questionId %q", i+1, a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
	}
	return nil
}

func (r *SubmitExamRequest) SessionUUID() uuid.UUID {
	id, _ := uuid.Parse(r.SessionID)
	return id
}

func (r *SubmitExamRequest) SessionAnswers() session.AnswersJSON {
	out := make(session.AnswersJSON, 0, len(r.Answers))
	for _, a := range r.Answers {
		out = append(out, session.Answer{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	return out
}
