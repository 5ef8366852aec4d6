package exam

import (
	"context"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Finder returns exams as candidates see them, without correct answers.
//
//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, id uuid.UUID) (*domainExam.Exam, error)
	ListActive(ctx context.Context) ([]*domainExam.Exam, error)
}

type finder struct {
	logger *logrus.Logger
	repo   domainExam.Repository
}

func NewFinder(logger *logrus.Logger, repo domainExam.Repository) Finder {
	return &finder{
		logger: logger,
		repo:   repo,
	}
}

func (f *finder) Find(ctx context.Context, id uuid.UUID) (*domainExam.Exam, error) {
	entity, err := f.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsActive {
		return nil, domain.NewNotFoundError("exam", id)
	}
	return entity.Public(), nil
}

func (f *finder) ListActive(ctx context.Context) ([]*domainExam.Exam, error) {
	exams, err := f.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domainExam.Exam, 0, len(exams))
	for _, e := range exams {
		out = append(out, e.Public())
	}
	return out, nil
}
