// Package auth simulates the storefront's sign-in exchange. There is no real
// authentication; a fixed mock identity comes back after a short delay, and
// guest entry is immediate. The delay is a cancelable wait so navigating
// away aborts the pending continuation.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/fakhama-store/storefront/internal/domain"
)

const (
	defaultSignInDelay = 1500 * time.Millisecond

	mockUserName   = "فهد الأحمد"
	mockUserEmail  = "fahad@example.com"
	mockUserAvatar = "https://i.pravatar.cc/150?u=fahad"

	guestName = "زائر"
)

// Service issues mock identities.
type Service struct {
	delay time.Duration
}

// NewService builds the simulated auth service. A non-positive delay picks
// the default.
func NewService(delay time.Duration) *Service {
	if delay <= 0 {
		delay = defaultSignInDelay
	}
	return &Service{delay: delay}
}

// SignIn waits out the simulated exchange and returns the mock registered
// user. The supplied email is echoed into the identity when present. If ctx
// is canceled before the delay elapses, no identity is produced and the
// context error is returned; the caller's session stays untouched.
func (s *Service) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	_ = password // never inspected; this is a demo

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.User{}, ctx.Err()
	case <-timer.C:
	}

	addr := strings.TrimSpace(email)
	if addr == "" {
		addr = mockUserEmail
	}
	return domain.User{
		Name:   mockUserName,
		Email:  addr,
		Avatar: mockUserAvatar,
		Role:   domain.RoleUser,
	}, nil
}

// Guest returns the anonymous identity immediately.
func (s *Service) Guest() domain.User {
	return domain.User{
		Name: guestName,
		Role: domain.RoleGuest,
	}
}
