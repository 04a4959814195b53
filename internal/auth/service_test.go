package auth

import (
	"errors"
	"testing"

	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, core.RoleStaff, "reception")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDefaultsToStaffRole(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	user, err := service.Register("Test User", "test@example.com", "Password@123", "", "reception")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != core.RoleStaff {
		t.Errorf("expected default role Staff, got %s", user.Role)
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "not-an-email", "Password@123", "", ""); err == nil {
		t.Fatalf("expected error for invalid email")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Register("Other User", "test@example.com", "Password@456", "", "")
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestLoginReturnsSessionToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	service := NewService(NewInMemoryUserRepository())

	registered, err := service.Register("Desk User", "desk@example.com", "Password@123", core.RoleAdmin, "frontdesk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := service.Login("desk@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}

	sess, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.UserID != registered.ID || sess.Role != core.RoleAdmin || sess.Department != "frontdesk" {
		t.Errorf("unexpected session from token: %+v", sess)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	service := NewService(NewInMemoryUserRepository())
	if _, err := service.Register("Desk User", "desk@example.com", "Password@123", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := service.Login("desk@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
