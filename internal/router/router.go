// Package router resolves the session's symbolic view value to the screen
// that should render, and applies the access policy uniformly before any
// guarded view is built.
package router

import (
	"github.com/fakhama-store/storefront/internal/domain"
)

// Access is the policy outcome for a resolved view.
type Access string

const (
	// AccessGranted renders the view's full content.
	AccessGranted Access = "granted"
	// AccessLocked renders the locked-content placeholder. Navigation is
	// never blocked; only the content area degrades.
	AccessLocked Access = "locked"
)

// Resolution is the router's answer for a render pass.
type Resolution struct {
	View   domain.View
	Access Access
}

// guardedViews maps each guarded view to the roles allowed to see its
// content. Any non-guest role reaches the admin dashboard; that is a known
// gap kept on purpose, not an oversight.
var guardedViews = map[domain.View][]domain.Role{
	domain.ViewUserDashboard:  {domain.RoleUser, domain.RoleAdmin, domain.RoleVendor},
	domain.ViewAdminDashboard: {domain.RoleUser, domain.RoleAdmin, domain.RoleVendor},
}

// Resolve normalises the requested view and evaluates the access policy for
// the given user. Unknown view values fall back to the home view. Every view
// is reachable from every other; there is no terminal state.
func Resolve(view domain.View, user *domain.User) Resolution {
	if !view.Known() {
		view = domain.ViewHome
	}

	allowed, guarded := guardedViews[view]
	if !guarded {
		return Resolution{View: view, Access: AccessGranted}
	}

	if user.IsGuest() {
		return Resolution{View: view, Access: AccessLocked}
	}
	for _, role := range allowed {
		if user.Role == role {
			return Resolution{View: view, Access: AccessGranted}
		}
	}
	return Resolution{View: view, Access: AccessLocked}
}

// Guarded reports whether the view carries an access check.
func Guarded(view domain.View) bool {
	_, ok := guardedViews[view]
	return ok
}
