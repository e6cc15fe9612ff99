package inkpress

import (
	"path/filepath"
	"testing"
)

func setupTestAccounts(t *testing.T) *AccountStore {
	t.Helper()
	s, err := NewAccountStore(filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("failed to create account store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := setupTestAccounts(t)

	err := s.Register(Account{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := s.Authenticate("ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("Name = %q, want %q", got.Name, "Ada")
	}
	if got.CreatedAt == "" {
		t.Error("CreatedAt should be stamped on register")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	s := setupTestAccounts(t)

	if err := s.Register(Account{Name: "Ada", Email: "ada@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := s.Authenticate("ada@example.com", "wrong99")
	if err != ErrInvalidLogin {
		t.Errorf("expected ErrInvalidLogin, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	s := setupTestAccounts(t)

	// Unknown email and wrong password must be indistinguishable.
	_, err := s.Authenticate("nobody@example.com", "secret1")
	if err != ErrInvalidLogin {
		t.Errorf("expected ErrInvalidLogin, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := setupTestAccounts(t)

	if err := s.Register(Account{Name: "Ada", Email: "ada@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	err := s.Register(Account{Name: "Other", Email: "ada@example.com", Password: "secret2"})
	if err != ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}
