package session

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=session_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, session *ExamSession) error
	Get(ctx context.Context, id uuid.UUID) (*ExamSession, error)
	FindActive(ctx context.Context, userID, examID uuid.UUID) (*ExamSession, error)
	ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*ExamSession, error)
	// Complete persists the graded session only while it is still in progress.
	// It returns domain.ErrSessionNotActive when another submission got there first.
	Complete(ctx context.Context, session *ExamSession) error
	AttachCertificate(ctx context.Context, id uuid.UUID, certificateID string) error
	// UpdateProctoring refreshes the proctoring summary of an in-progress session.
	UpdateProctoring(ctx context.Context, id uuid.UUID, snapshot ProctoringSnapshot) error
}
