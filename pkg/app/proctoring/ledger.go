package proctoring

import (
	"context"
	"fmt"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	domainSession "github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Ledger --dir=. --output=./mocks --filename=ledger_mock.go --case=underscore --with-expecter
type Ledger interface {
	Record(ctx context.Context, sessionID uuid.UUID, violations []domainProctoring.Violation) (domainProctoring.SessionReport, error)
	Report(ctx context.Context, sessionID uuid.UUID) (domainProctoring.SessionReport, error)
}

type ledger struct {
	logger     *logrus.Logger
	violations domainProctoring.ViolationRepository
	sessions   domainSession.Repository
}

func NewLedger(
	logger *logrus.Logger,
	violations domainProctoring.ViolationRepository,
	sessions domainSession.Repository,
) Ledger {
	return &ledger{
		logger:     logger,
		violations: violations,
		sessions:   sessions,
	}
}

// Record persists violations before anything else reads them, then refreshes the session's proctoring columns.
func (l *ledger) Record(
	ctx context.Context,
	sessionID uuid.UUID,
	violations []domainProctoring.Violation,
) (domainProctoring.SessionReport, error) {
	if len(violations) == 0 {
		return l.Report(ctx, sessionID)
	}
	for i := range violations {
		violations[i].SessionID = sessionID
	}
	if err := l.violations.Append(ctx, violations); err != nil {
		return domainProctoring.SessionReport{}, fmt.Errorf("failed to record violations: %w", err)
	}

	report, err := l.Report(ctx, sessionID)
	if err != nil {
		return domainProctoring.SessionReport{}, err
	}

	snapshot := domainSession.ProctoringSnapshot{
		WarningCount:   report.WarningCount(),
		RiskScore:      report.RiskScore,
		Recommendation: report.Recommendation,
	}
	if err := l.sessions.UpdateProctoring(ctx, sessionID, snapshot); err != nil {
		l.logger.WithError(err).WithField("session_id", sessionID).Error("failed to update session proctoring summary")
		return report, fmt.Errorf("failed to update session proctoring summary: %w", err)
	}
	return report, nil
}

// Report aggregates the stored violations of a session. A session without violations yields a zero report.
func (l *ledger) Report(ctx context.Context, sessionID uuid.UUID) (domainProctoring.SessionReport, error) {
	violations, err := l.violations.ListBySession(ctx, sessionID)
	if err != nil {
		return domainProctoring.SessionReport{}, fmt.Errorf("failed to load violations: %w", err)
	}
	return domainProctoring.NewSessionReport(sessionID, violations), nil
}
