package auth

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/user"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockery --name=Registrar --dir=. --output=./mocks --filename=registrar_mock.go --case=underscore --with-expecter
type Registrar interface {
	Register(ctx context.Context, req *request.RegisterUserRequest) (*user.User, error)
}

type registrar struct {
	logger *logrus.Logger
	repo   user.Repository
	cost   int
}

func NewRegistrar(logger *logrus.Logger, repo user.Repository) Registrar {
	return &registrar{
		logger: logger,
		repo:   repo,
		cost:   bcrypt.DefaultCost,
	}
}

func (r *registrar) Register(ctx context.Context, req *request.RegisterUserRequest) (*user.User, error) {
	existing, err := r.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrEmailTaken
	case err != nil && !domain.IsNotFoundError(err):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), r.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity := &user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         user.RoleStudent,
		IsActive:     true,
	}
	if err := r.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": entity.ID,
		"role":    entity.Role,
	}).Info("user registered")
	return entity, nil
}
