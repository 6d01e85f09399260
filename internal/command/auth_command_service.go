package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Norahnjesh/Transport-Solution/internal/models"
	"github.com/Norahnjesh/Transport-Solution/internal/repository"
	"github.com/Norahnjesh/Transport-Solution/internal/utils"
)

// UserStore is the slice of the user repository the write side needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer signs session tokens for provisioned users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthCommandService handles the write side of authentication: native
// registration and social-login provisioning.
type AuthCommandService struct {
	users  UserStore
	issuer TokenIssuer
}

func NewAuthCommandService(users UserStore, issuer TokenIssuer) *AuthCommandService {
	return &AuthCommandService{users: users, issuer: issuer}
}

// Register creates a native user with a bcrypt password hash and provider
// "email". Presence of email and password is validated by the handler. The
// pre-insert lookup keeps the common path cheap; under a race the unique
// constraint on email still decides, surfacing as ErrDuplicateEmail.
func (s *AuthCommandService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, repository.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Provider:     models.ProviderEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SocialLogin finds the user by email or provisions a row with the caller's
// provider tag and no password credential, then issues a token either way.
// Trust-the-caller boundary: the identity assertion from the named provider
// is not verified here.
func (s *AuthCommandService) SocialLogin(ctx context.Context, name, email, provider string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		user = &models.User{
			Name:      name,
			Email:     email,
			Provider:  provider,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			if !errors.Is(err, repository.ErrDuplicateEmail) {
				return nil, "", err
			}
			// Lost a provisioning race; the winner's row is authoritative.
			user, err = s.users.GetByEmail(ctx, email)
			if err != nil {
				return nil, "", err
			}
		}
	} else if err != nil {
		return nil, "", err
	}

	signed, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}
