package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) proctoring.EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Save replaces any earlier enrollment of the same user.
func (r *enrollmentRepository) Save(ctx context.Context, enrollment *proctoring.Enrollment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"embedding", "box_x", "box_y", "box_width", "box_height", "registered_at",
		}),
	}).Create(enrollment).Error
}

func (r *enrollmentRepository) Get(ctx context.Context, userID uuid.UUID) (*proctoring.Enrollment, error) {
	var entity proctoring.Enrollment
	if err := r.db.WithContext(ctx).First(&entity, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("face enrollment", userID)
		}
		return nil, err
	}
	return &entity, nil
}
