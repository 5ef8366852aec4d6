package exam

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainExam "github.com/NeuralTrust/TrustProctor/pkg/domain/exam"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/user"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, authorID uuid.UUID, role user.Role, req *request.CreateExamRequest) (*domainExam.Exam, error)
}

type creator struct {
	logger *logrus.Logger
	repo   domainExam.Repository
}

func NewCreator(logger *logrus.Logger, repo domainExam.Repository) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
	}
}

func (c *creator) Create(
	ctx context.Context,
	authorID uuid.UUID,
	role user.Role,
	req *request.CreateExamRequest,
) (*domainExam.Exam, error) {
	if !role.CanAuthor() {
		return nil, domain.ErrForbidden
	}

	entity := &domainExam.Exam{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Duration:     req.Duration,
		PassingScore: req.PassingScore,
		Questions:    req.ExamQuestions(),
		CreatorID:    authorID,
		IsActive:     true,
	}
	entity.ApplyDefaults()

	if err := c.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save exam: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"exam_id":   entity.ID,
		"questions": len(entity.Questions),
	}).Info("exam created")
	return entity, nil
}
