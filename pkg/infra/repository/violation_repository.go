package repository

import (
	"context"

	"github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type violationRepository struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) proctoring.ViolationRepository {
	return &violationRepository{
		db: db,
	}
}

// Append inserts the violations in one statement so a frame's violations keep their emission order in seq.
func (r *violationRepository) Append(ctx context.Context, violations []proctoring.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&violations).Error
}

func (r *violationRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]proctoring.Violation, error) {
	var violations []proctoring.Violation
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("seq ASC").
		Find(&violations).Error; err != nil {
		return nil, err
	}
	return violations, nil
}
