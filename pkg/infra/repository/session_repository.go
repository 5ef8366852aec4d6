package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) session.Repository {
	return &sessionRepository{
		db: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *session.ExamSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.ExamSession, error) {
	var entity session.ExamSession
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("exam session", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *sessionRepository) FindActive(ctx context.Context, userID, examID uuid.UUID) (*session.ExamSession, error) {
	var entity session.ExamSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND exam_id = ? AND status = ?", userID, examID, session.StatusInProgress).
		Order("started_at DESC").
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("active exam session", examID)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *sessionRepository) ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*session.ExamSession, error) {
	var sessions []*session.ExamSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, session.StatusCompleted).
		Order("completed_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

var completionColumns = []string{
	"status",
	"answers",
	"raw_score",
	"score",
	"risk_score",
	"recommendation",
	"warning_count",
	"passed",
	"certificate_eligible",
	"completed_at",
	"updated_at",
}

func (r *sessionRepository) Complete(ctx context.Context, s *session.ExamSession) error {
	result := r.db.WithContext(ctx).
		Model(s).
		Where("status = ?", session.StatusInProgress).
		Select(completionColumns).
		Updates(s)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSessionNotActive
	}
	return nil
}

func (r *sessionRepository) AttachCertificate(ctx context.Context, id uuid.UUID, certificateID string) error {
	return r.db.WithContext(ctx).
		Model(&session.ExamSession{}).
		Where("id = ?", id).
		Update("certificate_id", certificateID).Error
}

func (r *sessionRepository) UpdateProctoring(ctx context.Context, id uuid.UUID, snapshot session.ProctoringSnapshot) error {
	result := r.db.WithContext(ctx).
		Model(&session.ExamSession{}).
		Where("id = ? AND status = ?", id, session.StatusInProgress).
		Updates(map[string]interface{}{
			"warning_count":  snapshot.WarningCount,
			"risk_score":     snapshot.RiskScore,
			"recommendation": snapshot.Recommendation,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSessionNotActive
	}
	return nil
}
