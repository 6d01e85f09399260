package query

import (
	"context"
	"errors"

	"github.com/Norahnjesh/Transport-Solution/internal/models"
	"github.com/Norahnjesh/Transport-Solution/internal/repository"
	"github.com/Norahnjesh/Transport-Solution/internal/utils"
)

// ErrInvalidCredentials is returned for unknown emails, wrong passwords and
// social-only users alike, so login failures are indistinguishable to the
// caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of the user repository the read side needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthQueryService handles the read side of authentication. Login never
// mutates state.
type AuthQueryService struct {
	users  UserStore
	issuer TokenIssuer
}

func NewAuthQueryService(users UserStore, issuer TokenIssuer) *AuthQueryService {
	return &AuthQueryService{users: users, issuer: issuer}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token plus the user. A user without a password credential (social
// only) can never log in here.
func (s *AuthQueryService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if user.PasswordHash == "" || !utils.CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// GetUser returns the serialised view of a user by ID.
func (s *AuthQueryService) GetUser(ctx context.Context, id int64) (*models.UserView, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.View(), nil
}
