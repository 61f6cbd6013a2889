package views

import (
	"context"
	"testing"

	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/domain"
	"github.com/fakhama-store/storefront/internal/reporting"
	"github.com/fakhama-store/storefront/internal/router"
	"github.com/fakhama-store/storefront/internal/session"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return Deps{Catalog: cat, Reports: reporting.NewStaticService()}
}

func registered() *domain.User {
	return &domain.User{Name: "فهد الأحمد", Role: domain.RoleUser}
}

func guest() *domain.User {
	return &domain.User{Name: "زائر", Role: domain.RoleGuest}
}

func TestBuildUnknownViewRendersHome(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{View: domain.View("bogus"), User: registered()}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.View != domain.ViewHome {
		t.Fatalf("expected home fallback, got %q", page.View)
	}
	if page.Home == nil {
		t.Fatalf("expected home view model populated")
	}
	if len(page.Home.BestSellers) != 3 {
		t.Fatalf("expected 3 best sellers, got %d", len(page.Home.BestSellers))
	}
}

func TestBuildGuestUserDashboardLocksContent(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{View: domain.ViewUserDashboard, User: guest()}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Access != router.AccessLocked {
		t.Fatalf("expected locked access, got %q", page.Access)
	}
	dash := page.UserDashboard
	if dash == nil || !dash.Locked {
		t.Fatalf("expected locked dashboard, got %+v", dash)
	}
	if len(dash.Orders) != 0 {
		t.Fatalf("locked dashboard must not expose the orders list")
	}
	if dash.LockedMessage == "" {
		t.Fatalf("expected locked placeholder message")
	}
}

func TestBuildRegisteredUserDashboardShowsOrders(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{View: domain.ViewUserDashboard, User: registered()}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dash := page.UserDashboard
	if dash == nil || dash.Locked {
		t.Fatalf("expected unlocked dashboard, got %+v", dash)
	}
	if len(dash.Orders) != 3 {
		t.Fatalf("expected 3 fixture orders, got %d", len(dash.Orders))
	}
	if len(dash.Tickets) != 2 {
		t.Fatalf("expected 2 fixture tickets, got %d", len(dash.Tickets))
	}
	if !dash.ChatAvailable {
		t.Fatalf("expected support chat available from complaints tab")
	}
}

func TestBuildDetailUnknownProductRendersNotFound(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{
		View:              domain.ViewDetail,
		User:              registered(),
		SelectedProductID: 424242,
	}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	detail := page.Detail
	if detail == nil || detail.Found {
		t.Fatalf("expected not-found detail state, got %+v", detail)
	}
	if detail.NotFoundMessage == "" {
		t.Fatalf("expected not-found message")
	}
}

func TestBuildDetailKnownProduct(t *testing.T) {
	deps := testDeps(t)
	first := deps.Catalog.Products()[0]
	snap := session.Snapshot{
		View:              domain.ViewDetail,
		User:              registered(),
		SelectedProductID: first.ID,
	}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	detail := page.Detail
	if detail == nil || !detail.Found {
		t.Fatalf("expected product found, got %+v", detail)
	}
	if detail.Product.ID != first.ID {
		t.Fatalf("expected product %d, got %d", first.ID, detail.Product.ID)
	}
	if len(detail.Reviews) == 0 {
		t.Fatalf("expected reviews fixture")
	}
}

func TestBuildCartTotals(t *testing.T) {
	deps := testDeps(t)
	products := deps.Catalog.Products()
	snap := session.Snapshot{
		View: domain.ViewCart,
		User: registered(),
		Cart: []domain.CartItem{
			{Product: products[0], Quantity: 2},
			{Product: products[1], Quantity: 1},
		},
	}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart := page.Cart
	if cart == nil || cart.Empty {
		t.Fatalf("expected populated cart view, got %+v", cart)
	}
	wantSubtotal := 2*products[0].Price + products[1].Price
	if cart.Subtotal != wantSubtotal {
		t.Fatalf("expected subtotal %d, got %d", wantSubtotal, cart.Subtotal)
	}
	if cart.Shipping != ShippingFee {
		t.Fatalf("expected flat shipping %d, got %d", ShippingFee, cart.Shipping)
	}
	if cart.Total != wantSubtotal+ShippingFee {
		t.Fatalf("expected total %d, got %d", wantSubtotal+ShippingFee, cart.Total)
	}
}

func TestBuildEmptyCartHasNoShipping(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{View: domain.ViewCart, User: registered()}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart := page.Cart
	if cart == nil || !cart.Empty {
		t.Fatalf("expected empty cart view, got %+v", cart)
	}
	if cart.Shipping != 0 || cart.Total != 0 {
		t.Fatalf("empty cart must carry no charges, got %+v", cart)
	}
}

func TestBuildCheckoutStepper(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{
		View:         domain.ViewCheckout,
		User:         registered(),
		CheckoutStep: session.CheckoutStepPayment,
	}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	co := page.Checkout
	if co == nil || co.Step != session.CheckoutStepPayment {
		t.Fatalf("expected step 2, got %+v", co)
	}
	if !co.Steps[1].Active || !co.Steps[0].Completed || co.Steps[2].Completed {
		t.Fatalf("unexpected stepper state: %+v", co.Steps)
	}
}

func TestBuildAdminDashboard(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{View: domain.ViewAdminDashboard, User: registered()}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dash := page.AdminDashboard
	if dash == nil || dash.Locked {
		t.Fatalf("expected unlocked admin dashboard for non-guest, got %+v", dash)
	}
	if len(dash.Cards) != 4 || len(dash.Sales) != 5 {
		t.Fatalf("expected fixture metrics, got %d cards / %d bars", len(dash.Cards), len(dash.Sales))
	}
}

func TestBuildAdminDashboardGuestLocked(t *testing.T) {
	deps := testDeps(t)
	deps.Reports = nil // locked path must not touch the metrics source
	snap := session.Snapshot{View: domain.ViewAdminDashboard, User: guest()}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.AdminDashboard == nil || !page.AdminDashboard.Locked {
		t.Fatalf("expected locked admin dashboard, got %+v", page.AdminDashboard)
	}
}

func TestBuildListingDoesNotFilterByQuery(t *testing.T) {
	deps := testDeps(t)
	snap := session.Snapshot{
		View:        domain.ViewListing,
		User:        registered(),
		SearchQuery: "ساعة",
	}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listing := page.Listing
	if listing == nil {
		t.Fatalf("expected listing view model")
	}
	if len(listing.Products) != deps.Catalog.Len() {
		t.Fatalf("listing must show the full grid, got %d of %d", len(listing.Products), deps.Catalog.Len())
	}
	if listing.Query != "ساعة" {
		t.Fatalf("expected query echoed for display, got %q", listing.Query)
	}
}

func TestBuildCartCountInChrome(t *testing.T) {
	deps := testDeps(t)
	products := deps.Catalog.Products()
	snap := session.Snapshot{
		View: domain.ViewHome,
		User: registered(),
		Cart: []domain.CartItem{{Product: products[0], Quantity: 3}},
	}

	page, err := Build(context.Background(), snap, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.CartCount != 3 {
		t.Fatalf("expected cart count 3 in chrome, got %d", page.CartCount)
	}
}
