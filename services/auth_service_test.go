package services

import (
	"errors"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.EnsureAdmin("owner", "owner@shop.test", "s3cret-pass"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		admin, err := svc.Authenticate("owner", "s3cret-pass")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if admin.Username != "owner" {
			t.Fatalf("expected owner, got %q", admin.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("owner", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate("ghost", "s3cret-pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	// Both failure modes must be the same error kind so the response cannot
	// be used to enumerate usernames.
	t.Run("failures are indistinguishable", func(t *testing.T) {
		_, wrongPass := svc.Authenticate("owner", "wrong")
		_, unknownUser := svc.Authenticate("ghost", "s3cret-pass")
		if !errors.Is(wrongPass, unknownUser) {
			t.Fatalf("expected identical errors, got %v and %v", wrongPass, unknownUser)
		}
	})
}

func TestEnsureAdminResetsExistingAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	first, err := svc.EnsureAdmin("owner", "owner@shop.test", "old-pass")
	if err != nil {
		t.Fatalf("EnsureAdmin create: %v", err)
	}

	second, err := svc.EnsureAdmin("owner", "new@shop.test", "new-pass")
	if err != nil {
		t.Fatalf("EnsureAdmin reset: %v", err)
	}

	if first.ID != second.ID {
		t.Fatal("reset must reuse the existing admin row")
	}
	if _, err := svc.Authenticate("owner", "old-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("old password must stop working after reset")
	}
	if _, err := svc.Authenticate("owner", "new-pass"); err != nil {
		t.Fatalf("new password must work after reset: %v", err)
	}
}

func TestEnsureAdminRequiresAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.EnsureAdmin("owner", "", "pass"); err == nil {
		t.Fatal("expected error for missing email")
	}
}
