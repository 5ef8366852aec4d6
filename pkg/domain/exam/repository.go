package exam

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=exam_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, exam *Exam) error
	Get(ctx context.Context, id uuid.UUID) (*Exam, error)
	ListActive(ctx context.Context) ([]*Exam, error)
}
