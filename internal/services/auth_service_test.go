package services

import (
	"testing"

	"rionido/pkg/utils"
)

func TestLoginWithPlainPasswordBootstrap(t *testing.T) {
	t.Setenv("STAFF_PASSWORD_HASH", "")
	t.Setenv("STAFF_PASSWORD", "open-sesame")

	svc := NewAuthService()

	token, err := svc.Login("open-sesame")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}

	if _, err := svc.Login("wrong"); err != utils.ErrUnauthorized {
		t.Errorf("wrong password: got %v, want ErrUnauthorized", err)
	}
}

func TestLoginWithPrecomputedHash(t *testing.T) {
	hash, err := utils.HashPassword("lodge-key")
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("STAFF_PASSWORD_HASH", hash)
	t.Setenv("STAFF_PASSWORD", "")

	svc := NewAuthService()

	if _, err := svc.Login("lodge-key"); err != nil {
		t.Errorf("Login() error = %v", err)
	}
}

func TestLoginRejectsEmptyAndUnconfigured(t *testing.T) {
	t.Setenv("STAFF_PASSWORD_HASH", "")
	t.Setenv("STAFF_PASSWORD", "")

	svc := NewAuthService()

	if _, err := svc.Login(""); err != utils.ErrInvalidInput {
		t.Errorf("empty password: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Login("anything"); err != utils.ErrUnauthorized {
		t.Errorf("no configured credential: got %v, want ErrUnauthorized", err)
	}
}
