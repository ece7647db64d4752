package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Username != "alice" {
		t.Errorf("Expected username %q, got %q", "alice", user.Username)
	}
	if len(user.Roles) != 1 || user.Roles[0] != RoleUser {
		t.Errorf("Expected new users to start with only the USER role, got %v", user.Roles)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"empty username", "", "alice@example.com", "supersecret", ErrEmptyUsername},
		{"empty email", "alice", "", "supersecret", ErrEmptyEmail},
		{"malformed email", "alice", "not-an-email", "supersecret", ErrInvalidEmail},
		{"seven character password", "alice", "alice@example.com", "seven!!", ErrPasswordTooShort},
		{"over-length password", "alice", "alice@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUserValidateLoadedFromStore(t *testing.T) {
	// Users loaded from the store carry only a hash, no plaintext password.
	user := User{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Roles:          []Role{RoleUser},
	}
	if err := user.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	user.HashedPassword = ""
	if err := user.Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	user.Roles = nil
	if err := user.Validate(); !errors.Is(err, ErrNoRoles) {
		t.Errorf("Expected error %v, got %v", ErrNoRoles, err)
	}
}

func TestUserHasRole(t *testing.T) {
	user := User{Roles: []Role{RoleUser, RoleAdmin}}

	if !user.HasRole(RoleAdmin) {
		t.Error("Expected user to have ADMIN role")
	}
	if !user.HasRole(RoleUser) {
		t.Error("Expected user to have USER role")
	}

	user.Roles = []Role{RoleUser}
	if user.HasRole(RoleAdmin) {
		t.Error("Expected user without ADMIN role to report false")
	}
}
