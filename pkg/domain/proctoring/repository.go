package proctoring

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=ViolationRepository --dir=. --output=./mocks --filename=violation_repository_mock.go --case=underscore --with-expecter
type ViolationRepository interface {
	Append(ctx context.Context, violations []Violation) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]Violation, error)
}

//go:generate mockery --name=EnrollmentRepository --dir=. --output=./mocks --filename=enrollment_repository_mock.go --case=underscore --with-expecter
type EnrollmentRepository interface {
	Save(ctx context.Context, enrollment *Enrollment) error
	Get(ctx context.Context, userID uuid.UUID) (*Enrollment, error)
}
