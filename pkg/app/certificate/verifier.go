package certificate

import (
	"context"
	"fmt"

	domainCertificate "github.com/NeuralTrust/TrustProctor/pkg/domain/certificate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Verification struct {
	Valid       bool                           `json:"valid"`
	Certificate *domainCertificate.Certificate `json:"certificate"`
}

//go:generate mockery --name=Verifier --dir=. --output=./mocks --filename=verifier_mock.go --case=underscore --with-expecter
type Verifier interface {
	Get(ctx context.Context, id string) (*domainCertificate.Certificate, error)
	Verify(ctx context.Context, id string) (*Verification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domainCertificate.Certificate, error)
}

type verifier struct {
	logger *logrus.Logger
	repo   domainCertificate.Repository
}

func NewVerifier(logger *logrus.Logger, repo domainCertificate.Repository) Verifier {
	return &verifier{
		logger: logger,
		repo:   repo,
	}
}

func (v *verifier) Get(ctx context.Context, id string) (*domainCertificate.Certificate, error) {
	return v.repo.Get(ctx, id)
}

// Verify recomputes the hash of the stored data. A mismatch means the row was altered after issue.
func (v *verifier) Verify(ctx context.Context, id string) (*Verification, error) {
	cert, err := v.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	hash, err := cert.Data().Hash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash certificate: %w", err)
	}
	valid := hash == cert.Hash
	if !valid {
		v.logger.WithField("certificate_id", id).Warn("certificate hash mismatch")
	}
	return &Verification{Valid: valid, Certificate: cert}, nil
}

func (v *verifier) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domainCertificate.Certificate, error) {
	certs, err := v.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []*domainCertificate.Certificate{}
	}
	return certs, nil
}
