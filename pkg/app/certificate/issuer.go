package certificate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	domainCertificate "github.com/NeuralTrust/TrustProctor/pkg/domain/certificate"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/sirupsen/logrus"
)

const idPrefix = "CERT_"

type IssuerConfig struct {
	Issuer              string
	VerificationBaseURL string
}

type IssueInput struct {
	Session     *session.ExamSession
	Exam        *exam.Exam
	StudentID   string
	StudentName string
}

//go:generate mockery --name=Issuer --dir=. --output=./mocks --filename=issuer_mock.go --case=underscore --with-expecter
type Issuer interface {
	Issue(ctx context.Context, in IssueInput) (*domainCertificate.Certificate, error)
}

type issuer struct {
	logger *logrus.Logger
	repo   domainCertificate.Repository
	cfg    IssuerConfig
	now    func() time.Time
}

func NewIssuer(logger *logrus.Logger, repo domainCertificate.Repository, cfg IssuerConfig) Issuer {
	if cfg.Issuer == "" {
		cfg.Issuer = domainCertificate.DefaultIssuer
	}
	cfg.VerificationBaseURL = strings.TrimRight(cfg.VerificationBaseURL, "/")
	return &issuer{
		logger: logger,
		repo:   repo,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (i *issuer) Issue(ctx context.Context, in IssueInput) (*domainCertificate.Certificate, error) {
	id, err := newCertificateID()
	if err != nil {
		return nil, err
	}

	completedAt := i.now()
	if in.Session.CompletedAt != nil {
		completedAt = *in.Session.CompletedAt
	}

	cert := &domainCertificate.Certificate{
		ID:           id,
		SessionID:    in.Session.ID,
		UserID:       in.Session.UserID,
		ExamID:       in.Exam.ID,
		StudentID:    in.StudentID,
		StudentName:  in.StudentName,
		ExamTitle:    in.Exam.Title,
		Score:        in.Session.Score,
		PassingScore: in.Exam.PassingScore,
		CompletedAt:  completedAt.UTC().Truncate(time.Second),
		IssuedAt:     i.now().UTC().Truncate(time.Second),
		Issuer:       i.cfg.Issuer,
	}
	cert.Hash, err = cert.Data().Hash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash certificate: %w", err)
	}
	cert.VerificationURL = fmt.Sprintf("%s/verify/%s", i.cfg.VerificationBaseURL, id)

	if err := i.repo.Save(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to save certificate: %w", err)
	}

	i.logger.WithFields(logrus.Fields{
		"certificate_id": cert.ID,
		"session_id":     cert.SessionID,
	}).Info("certificate issued")
	return cert, nil
}

func newCertificateID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate certificate id: %w", err)
	}
	return idPrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}
