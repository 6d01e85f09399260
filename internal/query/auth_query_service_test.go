package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Norahnjesh/Transport-Solution/internal/models"
	"github.com/Norahnjesh/Transport-Solution/internal/repository"
	"github.com/Norahnjesh/Transport-Solution/internal/token"
	"github.com/Norahnjesh/Transport-Solution/internal/utils"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestService(t *testing.T) (*AuthQueryService, *token.Issuer) {
	t.Helper()

	hash, err := utils.HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	store := &fakeUserStore{users: map[string]*models.User{
		"a@x.com": {ID: 1, Name: "Alice", Email: "a@x.com", PasswordHash: hash, Provider: models.ProviderEmail},
		"b@x.com": {ID: 2, Name: "Bob", Email: "b@x.com", Provider: "google"},
	}}

	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthQueryService(store, issuer), issuer
}

func TestLogin_Success(t *testing.T) {
	svc, issuer := newTestService(t)

	signed, user, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected user 1 got %d", user.ID)
	}

	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user_id %d does not match user %d", claims.UserID, user.ID)
	}
}

func TestLogin_UniformFailures(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "a@x.com", "wrong"},
		{"unknown email", "nobody@x.com", "p1"},
		{"social-only user has no usable credential", "b@x.com", "p1"},
		{"empty password against social-only user", "b@x.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.GetUser(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if view.Email != "b@x.com" || view.Provider != "google" {
		t.Errorf("unexpected view: %+v", view)
	}

	if _, err := svc.GetUser(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
