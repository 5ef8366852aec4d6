package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/certificate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) certificate.Repository {
	return &certificateRepository{
		db: db,
	}
}

func (r *certificateRepository) Save(ctx context.Context, c *certificate.Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *certificateRepository) Get(ctx context.Context, id string) (*certificate.Certificate, error) {
	var entity certificate.Certificate
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundErrorByKey("certificate", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*certificate.Certificate, error) {
	var certificates []*certificate.Certificate
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}
