package exam

import (
	"math"
	"strings"

	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
)

const minEssayLength = 10

type QuestionResult struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
	Points     int    `json:"points"`
	Earned     int    `json:"earned"`
}

type Grade struct {
	RawScore  float64          `json:"raw_score"`
	Earned    int              `json:"earned"`
	MaxPoints int              `json:"max_points"`
	Questions []QuestionResult `json:"questions"`
}

// GradeAnswers scores multiple-choice answers by exact match and essays by a trimmed length above ten characters.
// The raw score is the rounded percentage of points earned, 0 when the exam carries no points.
func GradeAnswers(e *domainExam.Exam, answers session.AnswersJSON) Grade {
	g := Grade{Questions: make([]QuestionResult, 0, len(e.Questions))}
	for _, q := range e.Questions {
		points := q.PointsOrDefault()
		g.MaxPoints += points

		answer, _ := answers.Find(q.ID)
		result := QuestionResult{
			QuestionID: q.ID,
			Answer:     answer.Answer,
			Points:     points,
		}
		switch q.Type {
		case domainExam.QuestionMultipleChoice:
			result.Correct = answer.Answer != "" && answer.Answer == q.CorrectAnswer
		case domainExam.QuestionEssay:
			result.Correct = len(strings.TrimSpace(answer.Answer)) > minEssayLength
		}
		if result.Correct {
			result.Earned = points
			g.Earned += points
		}
		g.Questions = append(g.Questions, result)
	}
	if g.MaxPoints > 0 {
		g.RawScore = math.Round(float64(g.Earned) / float64(g.MaxPoints) * 100)
	}
	return g
}
