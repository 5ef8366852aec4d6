package certificate

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=certificate_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, certificate *Certificate) error
	Get(ctx context.Context, id string) (*Certificate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Certificate, error)
}
