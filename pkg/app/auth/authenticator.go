package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/user"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

//go:generate mockery --name=Authenticator --dir=. --output=./mocks --filename=authenticator_mock.go --case=underscore --with-expecter
type Authenticator interface {
	Login(ctx context.Context, req *request.LoginRequest) (*LoginResult, error)
}

type authenticator struct {
	logger     *logrus.Logger
	repo       user.Repository
	jwtManager jwt.Manager
}

func NewAuthenticator(logger *logrus.Logger, repo user.Repository, jwtManager jwt.Manager) Authenticator {
	return &authenticator{
		logger:     logger,
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login answers ErrInvalidCredentials for unknown emails, inactive users and wrong passwords alike.
func (a *authenticator) Login(ctx context.Context, req *request.LoginRequest) (*LoginResult, error) {
	entity, err := a.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !entity.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := a.jwtManager.CreateToken(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	if err := a.repo.TouchLastLogin(ctx, entity.ID); err != nil {
		a.logger.WithError(err).WithField("user_id", entity.ID).Warn("failed to update last login")
	} else {
		now := time.Now()
		entity.LastLogin = &now
	}

	return &LoginResult{Token: token, User: entity}, nil
}
