package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) exam.Repository {
	return &examRepository{
		db: db,
	}
}

func (r *examRepository) Save(ctx context.Context, e *exam.Exam) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *examRepository) Get(ctx context.Context, id uuid.UUID) (*exam.Exam, error) {
	var entity exam.Exam
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("exam", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *examRepository) ListActive(ctx context.Context) ([]*exam.Exam, error) {
	var exams []*exam.Exam
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}
