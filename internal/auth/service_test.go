package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fakhama-store/storefront/internal/domain"
)

func TestSignInReturnsMockUser(t *testing.T) {
	svc := NewService(time.Millisecond)

	user, err := svc.SignIn(context.Background(), "someone@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected user role, got %q", user.Role)
	}
	if user.Email != "someone@example.com" {
		t.Fatalf("expected supplied email echoed, got %q", user.Email)
	}
	if user.Name == "" {
		t.Fatalf("expected mock name set")
	}
}

func TestSignInDefaultsEmailWhenBlank(t *testing.T) {
	svc := NewService(time.Millisecond)

	user, err := svc.SignIn(context.Background(), "   ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != mockUserEmail {
		t.Fatalf("expected fallback email, got %q", user.Email)
	}
}

func TestSignInCancellationAborts(t *testing.T) {
	svc := NewService(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.SignIn(ctx, "a@b.c", "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("cancellation should abort without waiting out the delay")
	}
}

func TestGuestIsImmediateAndAnonymous(t *testing.T) {
	svc := NewService(time.Hour)

	guest := svc.Guest()
	if guest.Role != domain.RoleGuest {
		t.Fatalf("expected guest role, got %q", guest.Role)
	}
	if guest.Email != "" || guest.Avatar != "" {
		t.Fatalf("expected bare anonymous identity, got %+v", guest)
	}
}
