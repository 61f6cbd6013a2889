// Package views turns a session snapshot plus the static catalog into the
// view model for whichever screen the router selects. Builders are pure:
// they read state and fixtures, never mutate anything, and emit plain
// structs for the rendering collaborator to draw.
package views

import (
	"context"

	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/domain"
	"github.com/fakhama-store/storefront/internal/reporting"
	"github.com/fakhama-store/storefront/internal/router"
	"github.com/fakhama-store/storefront/internal/session"
)

// Page is the top-level render output: the resolved view, the access
// decision, the navigation chrome, and exactly one populated view model.
type Page struct {
	View        domain.View    `json:"view"`
	Access      router.Access  `json:"access"`
	User        *domain.User   `json:"user,omitempty"`
	CartCount   int            `json:"cartCount"`
	SearchQuery string         `json:"searchQuery"`

	Auth           *AuthView           `json:"auth,omitempty"`
	Home           *HomeView           `json:"home,omitempty"`
	Listing        *ListingView        `json:"listing,omitempty"`
	Detail         *DetailView         `json:"detail,omitempty"`
	Cart           *CartView           `json:"cart,omitempty"`
	Checkout       *CheckoutView       `json:"checkout,omitempty"`
	UserDashboard  *UserDashboardView  `json:"userDashboard,omitempty"`
	AdminDashboard *AdminDashboardView `json:"adminDashboard,omitempty"`
}

// Deps carries the read-only collaborators the builders draw from.
type Deps struct {
	Catalog *catalog.Catalog
	Reports reporting.Service
}

// Build resolves the snapshot's view through the router and constructs the
// matching view model. The switch is exhaustive over the closed view set;
// the router guarantees the fallback for anything outside it.
func Build(ctx context.Context, snap session.Snapshot, deps Deps) (Page, error) {
	res := router.Resolve(snap.View, snap.User)

	page := Page{
		View:        res.View,
		Access:      res.Access,
		User:        snap.User,
		CartCount:   snap.CartCount(),
		SearchQuery: snap.SearchQuery,
	}

	switch res.View {
	case domain.ViewAuth:
		page.Auth = buildAuth()
	case domain.ViewHome:
		page.Home = buildHome(deps.Catalog)
	case domain.ViewListing:
		page.Listing = buildListing(snap, deps.Catalog)
	case domain.ViewDetail:
		page.Detail = buildDetail(snap, deps.Catalog)
	case domain.ViewCart:
		page.Cart = buildCart(snap)
	case domain.ViewCheckout:
		page.Checkout = buildCheckout(snap)
	case domain.ViewUserDashboard:
		page.UserDashboard = buildUserDashboard(snap, res.Access)
	case domain.ViewAdminDashboard:
		admin, err := buildAdminDashboard(ctx, res.Access, deps.Reports)
		if err != nil {
			return Page{}, err
		}
		page.AdminDashboard = admin
	}

	return page, nil
}
