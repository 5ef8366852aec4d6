package exam

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Result struct {
	SessionID           uuid.UUID                      `json:"session_id"`
	ExamID              uuid.UUID                      `json:"exam_id"`
	ExamTitle           string                         `json:"exam_title"`
	Status              session.Status                 `json:"status"`
	RawScore            float64                        `json:"raw_score"`
	Score               float64                        `json:"score"`
	PassingScore        int                            `json:"passing_score"`
	Passed              bool                           `json:"passed"`
	CertificateEligible bool                           `json:"certificate_eligible"`
	CertificateID       *string                        `json:"certificate_id,omitempty"`
	Questions           []QuestionResult               `json:"questions"`
	Proctoring          domainProctoring.SessionReport `json:"proctoring"`
	StartedAt           time.Time                      `json:"started_at"`
	CompletedAt         *time.Time                     `json:"completed_at,omitempty"`
}

type HistoryEntry struct {
	SessionID      uuid.UUID                       `json:"session_id"`
	ExamID         uuid.UUID                       `json:"exam_id"`
	ExamTitle      string                          `json:"exam_title"`
	Score          float64                         `json:"score"`
	Passed         bool                            `json:"passed"`
	RiskScore      float64                         `json:"risk_score"`
	Recommendation domainProctoring.Recommendation `json:"recommendation"`
	CertificateID  *string                         `json:"certificate_id,omitempty"`
	CompletedAt    *time.Time                      `json:"completed_at,omitempty"`
}

//go:generate mockery --name=ResultFinder --dir=. --output=./mocks --filename=result_finder_mock.go --case=underscore --with-expecter
type ResultFinder interface {
	Result(ctx context.Context, sessionID, userID uuid.UUID) (*Result, error)
	History(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error)
}

type ReportSource interface {
	Report(ctx context.Context, sessionID uuid.UUID) (domainProctoring.SessionReport, error)
}

type resultFinder struct {
	logger   *logrus.Logger
	exams    domainExam.Repository
	sessions session.Repository
	reports  ReportSource
}

func NewResultFinder(
	logger *logrus.Logger,
	exams domainExam.Repository,
	sessions session.Repository,
	reports ReportSource,
) ResultFinder {
	return &resultFinder{
		logger:   logger,
		exams:    exams,
		sessions: sessions,
		reports:  reports,
	}
}

func (f *resultFinder) Result(ctx context.Context, sessionID, userID uuid.UUID) (*Result, error) {
	examSession, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if examSession.UserID != userID {
		return nil, domain.ErrSessionOwnership
	}
	if examSession.Status != session.StatusCompleted {
		return nil, domain.ErrSessionNotActive
	}
	entity, err := f.exams.Get(ctx, examSession.ExamID)
	if err != nil {
		return nil, err
	}
	report, err := f.reports.Report(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	grade := GradeAnswers(entity, examSession.Answers)
	return &Result{
		SessionID:           examSession.ID,
		ExamID:              entity.ID,
		ExamTitle:           entity.Title,
		Status:              examSession.Status,
		RawScore:            examSession.RawScore,
		Score:               examSession.Score,
		PassingScore:        entity.PassingScore,
		Passed:              examSession.Passed,
		CertificateEligible: examSession.CertificateEligible,
		CertificateID:       examSession.CertificateID,
		Questions:           grade.Questions,
		Proctoring:          report,
		StartedAt:           examSession.StartedAt,
		CompletedAt:         examSession.CompletedAt,
	}, nil
}

func (f *resultFinder) History(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error) {
	sessions, err := f.sessions.ListCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	titles := make(map[uuid.UUID]string)
	entries := make([]HistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		title, ok := titles[s.ExamID]
		if !ok {
			entity, err := f.exams.Get(ctx, s.ExamID)
			switch {
			case err == nil:
				title = entity.Title
			case domain.IsNotFoundError(err):
				f.logger.WithField("exam_id", s.ExamID).Warn("history references a missing exam")
			default:
				return nil, err
			}
			titles[s.ExamID] = title
		}
		entries = append(entries, HistoryEntry{
			SessionID:      s.ID,
			ExamID:         s.ExamID,
			ExamTitle:      title,
			Score:          s.Score,
			Passed:         s.Passed,
			RiskScore:      s.RiskScore,
			Recommendation: s.Recommendation,
			CertificateID:  s.CertificateID,
			CompletedAt:    s.CompletedAt,
		})
	}
	return entries, nil
}
