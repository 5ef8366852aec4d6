package exam

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustProctor/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type StartInput struct {
	ExamID         uuid.UUID
	UserID         uuid.UUID
	Request        *request.StartExamRequest
	UserAgent      string
	AcceptLanguage string
}

type Started struct {
	Session *session.ExamSession `json:"session"`
	Exam    *domainExam.Exam     `json:"exam"`
	Resumed bool                 `json:"resumed"`
}

//go:generate mockery --name=Starter --dir=. --output=./mocks --filename=starter_mock.go --case=underscore --with-expecter
type Starter interface {
	Start(ctx context.Context, in StartInput) (*Started, error)
}

type starter struct {
	logger   *logrus.Logger
	exams    domainExam.Repository
	sessions session.Repository
}

func NewStarter(logger *logrus.Logger, exams domainExam.Repository, sessions session.Repository) Starter {
	return &starter{
		logger:   logger,
		exams:    exams,
		sessions: sessions,
	}
}

// Start resumes the candidate's in-progress session for the exam or opens a new one.
func (s *starter) Start(ctx context.Context, in StartInput) (*Started, error) {
	entity, err := s.exams.Get(ctx, in.ExamID)
	if err != nil {
		return nil, err
	}
	if !entity.IsActive {
		return nil, domain.ErrExamInactive
	}

	active, err := s.sessions.FindActive(ctx, in.UserID, in.ExamID)
	if err == nil {
		return &Started{Session: active, Exam: entity.Public(), Resumed: true}, nil
	}
	if !domain.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to look up active session: %w", err)
	}

	var biodata session.Biodata
	if in.Request != nil && in.Request.Biodata != nil {
		biodata = session.Biodata{
			FullName:    in.Request.Biodata.FullName,
			StudentID:   in.Request.Biodata.StudentID,
			PhoneNumber: in.Request.Biodata.PhoneNumber,
		}
	}
	ua := utils.ParseUserAgent(in.UserAgent, in.AcceptLanguage)
	device := session.Device{
		Device:  ua.Device,
		OS:      ua.OS,
		Browser: ua.Browser,
		Locale:  ua.Locale,
	}

	examSession := session.NewExamSession(in.ExamID, in.UserID, biodata, device)
	if err := s.sessions.Create(ctx, examSession); err != nil {
		return nil, fmt.Errorf("failed to create exam session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": examSession.ID,
		"exam_id":    in.ExamID,
		"user_id":    in.UserID,
		"device":     device.Device,
	}).Info("exam session started")
	return &Started{Session: examSession, Exam: entity.Public()}, nil
}
