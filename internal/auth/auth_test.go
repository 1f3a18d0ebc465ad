package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/garagedesk/internal/models"
)

type memoryUsers struct {
	byEmail map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers())

	user, err := a.Register(ctx, "  Owner@Garage.test ", "Owner", "s3cretpass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "owner@garage.test" {
		t.Errorf("Email = %q, want normalised", user.Email)
	}
	if user.PasswordHash == "s3cretpass" {
		t.Error("password stored in clear text")
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "owner@garage.test", "s3cretpass", nil},
		{"case-insensitive email", "OWNER@garage.test", "s3cretpass", nil},
		{"wrong password", "owner@garage.test", "nope-nope", ErrInvalidCredentials},
		{"unknown email", "ghost@garage.test", "s3cretpass", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Authenticate(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authenticate error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := a.Register(ctx, "owner@garage.test", "Again", "anotherpass"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate Register error = %v, want ErrEmailExists", err)
	}
	if _, err := a.Register(ctx, "new@garage.test", "New", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak Register error = %v, want ErrWeakPassword", err)
	}
}

func TestJWTManager(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "owner@garage.test", DisplayName: "Owner"}
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "owner@garage.test" || claims.Subject != "user-1" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later := NewJWTManager("test-secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := later.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate(strings.Repeat("x", 20)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})
}
