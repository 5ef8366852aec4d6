package exam_test

import (
	"testing"

	appExam "github.com/NeuralTrust/TrustProctor/pkg/app/exam"
	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/stretchr/testify/assert"
)

func gradedExam() *domainExam.Exam {
	return &domainExam.Exam{
		PassingScore: 70,
		Questions: domainExam.QuestionsJSON{
			{ID: "q1", Type: domainExam.QuestionMultipleChoice, Options: []string{"3", "4"}, CorrectAnswer: "4", Points: 10},
			{ID: "q2", Type: domainExam.QuestionMultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "b", Points: 10},
			{ID: "q3", Type: domainExam.QuestionEssay, Points: 10},
		},
	}
}

func TestGradeAnswers(t *testing.T) {
	tests := []struct {
		name     string
		answers  session.AnswersJSON
		raw      float64
		earned   int
		expected []bool
	}{
		{
			name: "all correct",
			answers: session.AnswersJSON{
				{QuestionID: "q1", Answer: "4"},
				{QuestionID: "q2", Answer: "b"},
				{QuestionID: "q3", Answer: "A long enough essay answer"},
			},
			raw: 100, earned: 30, expected: []bool{true, true, true},
		},
		{
			name: "essay too short after trimming",
			answers: session.AnswersJSON{
				{QuestionID: "q1", Answer: "4"},
				{QuestionID: "q3", Answer: "   ten chars   "},
			},
			raw: 33, earned: 10, expected: []bool{true, false, false},
		},
		{
			name: "case sensitive multiple choice",
			answers: session.AnswersJSON{
				{QuestionID: "q2", Answer: "B"},
			},
			raw: 0, earned: 0, expected: []bool{false, false, false},
		},
		{
			name: "two of three rounds",
			answers: session.AnswersJSON{
				{QuestionID: "q1", Answer: "4"},
				{QuestionID: "q3", Answer: "eleven char"},
			},
			raw: 67, earned: 20, expected: []bool{true, false, true},
		},
		{
			name:     "no answers",
			raw:      0,
			expected: []bool{false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := appExam.GradeAnswers(gradedExam(), tt.answers)

			assert.Equal(t, tt.raw, g.RawScore)
			assert.Equal(t, tt.earned, g.Earned)
			assert.Equal(t, 30, g.MaxPoints)
			for i, want := range tt.expected {
				assert.Equal(t, want, g.Questions[i].Correct, g.Questions[i].QuestionID)
			}
		})
	}
}

func TestGradeAnswers_DefaultPoints(t *testing.T) {
	e := &domainExam.Exam{Questions: domainExam.QuestionsJSON{
		{ID: "q1", Type: domainExam.QuestionMultipleChoice, CorrectAnswer: "x"},
		{ID: "q2", Type: domainExam.QuestionMultipleChoice, CorrectAnswer: "y", Points: 30},
	}}

	g := appExam.GradeAnswers(e, session.AnswersJSON{{QuestionID: "q1", Answer: "x"}})

	assert.Equal(t, 40, g.MaxPoints)
	assert.Equal(t, 25.0, g.RawScore)
}

func TestGradeAnswers_EmptyExam(t *testing.T) {
	g := appExam.GradeAnswers(&domainExam.Exam{}, nil)

	assert.Zero(t, g.RawScore)
	assert.Empty(t, g.Questions)
}
