package exam

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/app/certificate"
	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainCertificate "github.com/NeuralTrust/TrustProctor/pkg/domain/certificate"
	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/user"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics/metric_events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Submission struct {
	Session     *session.ExamSession           `json:"session"`
	Grade       Grade                          `json:"grade"`
	Report      domainProctoring.SessionReport `json:"proctoring"`
	Certificate *domainCertificate.Certificate `json:"certificate,omitempty"`
}

//go:generate mockery --name=Submitter --dir=. --output=./mocks --filename=submitter_mock.go --case=underscore --with-expecter
type Submitter interface {
	Submit(ctx context.Context, examID, userID uuid.UUID, req *request.SubmitExamRequest) (*Submission, error)
}

type SubmitterDeps struct {
	Exams      domainExam.Repository
	Sessions   session.Repository
	Users      user.Repository
	Proctoring proctoring.Service
	Issuer     certificate.Issuer
	Publisher  cache.EventPublisher
	Metrics    metrics.Worker
}

type submitter struct {
	logger *logrus.Logger
	deps   SubmitterDeps
	now    func() time.Time
}

func NewSubmitter(logger *logrus.Logger, deps SubmitterDeps) Submitter {
	return &submitter{
		logger: logger,
		deps:   deps,
		now:    time.Now,
	}
}

func (s *submitter) Submit(
	ctx context.Context,
	examID, userID uuid.UUID,
	req *request.SubmitExamRequest,
) (*Submission, error) {
	sessionID := req.SessionUUID()
	examSession, err := s.deps.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if examSession.UserID != userID {
		return nil, domain.ErrSessionOwnership
	}
	if examSession.ExamID != examID {
		return nil, domain.NewNotFoundError("exam session", sessionID)
	}
	if !examSession.InProgress() {
		return nil, domain.ErrSessionNotActive
	}

	entity, err := s.deps.Exams.Get(ctx, examID)
	if err != nil {
		return nil, err
	}

	examSession.Answers = req.SessionAnswers()
	grade := GradeAnswers(entity, examSession.Answers)

	report, err := s.deps.Proctoring.Report(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to build proctoring report: %w", err)
	}
	outcome := proctoring.FinalizeScore(grade.RawScore, report, float64(entity.PassingScore))

	completedAt := s.now()
	examSession.Status = session.StatusCompleted
	examSession.CompletedAt = &completedAt
	examSession.RawScore = grade.RawScore
	examSession.Score = outcome.AdjustedScore
	examSession.Passed = outcome.Passed
	examSession.CertificateEligible = outcome.CertificateEligible
	examSession.RiskScore = report.RiskScore
	examSession.Recommendation = report.Recommendation
	examSession.WarningCount = report.WarningCount()

	if err := s.deps.Sessions.Complete(ctx, examSession); err != nil {
		if errors.Is(err, domain.ErrSessionNotActive) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to complete exam session: %w", err)
	}

	var cert *domainCertificate.Certificate
	if outcome.CertificateEligible {
		cert = s.issueCertificate(ctx, examSession, entity)
	}
	if cert != nil {
		if err := s.deps.Sessions.AttachCertificate(ctx, examSession.ID, cert.ID); err != nil {
			s.logger.WithError(err).WithField("session_id", examSession.ID).Error("failed to attach certificate")
		} else {
			examSession.CertificateID = &cert.ID
		}
	}

	s.closeProctoring(ctx, examSession)
	s.recordSubmission(examSession)

	s.logger.WithFields(logrus.Fields{
		"session_id":     examSession.ID,
		"raw_score":      grade.RawScore,
		"score":          outcome.AdjustedScore,
		"risk_score":     report.RiskScore,
		"recommendation": report.Recommendation,
		"passed":         outcome.Passed,
	}).Info("exam submitted")

	return &Submission{
		Session:     examSession,
		Grade:       grade,
		Report:      report,
		Certificate: cert,
	}, nil
}

// issueCertificate never fails the submission; a missing certificate can be reissued by an operator.
func (s *submitter) issueCertificate(
	ctx context.Context,
	examSession *session.ExamSession,
	entity *domainExam.Exam,
) *domainCertificate.Certificate {
	studentName := examSession.Biodata.FullName
	studentID := examSession.Biodata.StudentID
	if studentName == "" || studentID == "" {
		if u, err := s.deps.Users.Get(ctx, examSession.UserID); err == nil {
			if studentName == "" {
				studentName = u.Name
			}
		} else {
			s.logger.WithError(err).Warn("failed to load candidate for certificate")
		}
		if studentID == "" {
			studentID = examSession.UserID.String()
		}
	}

	cert, err := s.deps.Issuer.Issue(ctx, certificate.IssueInput{
		Session:     examSession,
		Exam:        entity,
		StudentID:   studentID,
		StudentName: studentName,
	})
	if err != nil {
		s.logger.WithError(err).WithField("session_id", examSession.ID).Error("failed to issue certificate")
		return nil
	}
	return cert
}

func (s *submitter) closeProctoring(ctx context.Context, examSession *session.ExamSession) {
	s.deps.Proctoring.CloseSession(examSession.ID)
	if s.deps.Publisher == nil {
		return
	}
	err := s.deps.Publisher.Publish(ctx, event.SessionClosedEvent{
		SessionID: examSession.ID.String(),
		UserID:    examSession.UserID.String(),
	})
	if err != nil {
		s.logger.WithError(err).Warn("failed to publish session closed event")
	}
}

func (s *submitter) recordSubmission(examSession *session.ExamSession) {
	if s.deps.Metrics == nil {
		return
	}
	evt := metric_events.NewSubmissionEvent(examSession.ID)
	evt.UserID = examSession.UserID.String()
	evt.ExamID = examSession.ExamID.String()
	evt.Score = examSession.Score
	evt.RiskScore = examSession.RiskScore
	evt.Recommendation = string(examSession.Recommendation)
	evt.Passed = examSession.Passed
	evt.WarningCount = examSession.WarningCount
	s.deps.Metrics.Process(evt)
}
