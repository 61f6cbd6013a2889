// Package session owns the per-visit application state: identity, active
// view, selected product, cart contents and search query. Every mutation
// goes through State's methods; views only ever observe a Snapshot.
package session

import (
	"sync"

	"github.com/fakhama-store/storefront/internal/domain"
)

const (
	// CheckoutStepAddress is the first checkout step.
	CheckoutStepAddress = 1
	// CheckoutStepPayment is the second checkout step.
	CheckoutStepPayment = 2
	// CheckoutStepConfirm is the final checkout step.
	CheckoutStepConfirm = 3
)

// State is the mutable session/cart core. All operations are total: malformed
// input is clamped or ignored, never rejected. A single mutex serialises
// mutation because the HTTP surface may touch one session concurrently.
type State struct {
	mu           sync.Mutex
	user         *domain.User
	view         domain.View
	selectedID   int
	cart         []domain.CartItem
	searchQuery  string
	checkoutStep int
}

// Snapshot is an immutable copy of the session handed to view builders.
type Snapshot struct {
	User              *domain.User
	View              domain.View
	SelectedProductID int
	Cart              []domain.CartItem
	SearchQuery       string
	CheckoutStep      int
}

// NewState creates a fresh session parked on the auth view with an empty
// cart and no identity.
func NewState() *State {
	return &State{
		view:         domain.ViewAuth,
		cart:         []domain.CartItem{},
		checkoutStep: CheckoutStepAddress,
	}
}

// SetUser replaces the session identity. Passing nil signs the visitor out.
// Navigation is deliberately left to the caller.
func (s *State) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	dup := *user
	s.user = &dup
}

// SetView replaces the active view. It never touches the cart or identity.
// Unknown values are stored as-is; the router resolves them to the home
// view at render time.
func (s *State) SetView(view domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// SelectProduct records the selected product and navigates to the detail
// view as one atomic operation; no observer can see one without the other.
func (s *State) SelectProduct(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
	s.view = domain.ViewDetail
}

// AddToCart merges the product into the cart: an existing entry for the same
// product ID gains one unit, otherwise a new entry starts at quantity 1.
func (s *State) AddToCart(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: product, Quantity: 1})
}

// RemoveFromCart deletes the entry for the product ID. Removing an absent ID
// is a silent no-op.
func (s *State) RemoveFromCart(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adds delta to the entry's quantity, clamped to a minimum of
// one. Dropping below one never removes the entry; removal is explicit.
// Unknown IDs are ignored.
func (s *State) UpdateQuantity(id int, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == id {
			next := s.cart[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			s.cart[i].Quantity = next
			return
		}
	}
}

// SetVariant records the size/colour choice on an existing entry. Empty
// strings leave the corresponding attribute untouched.
func (s *State) SetVariant(id int, size, colour string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == id {
			if size != "" {
				s.cart[i].SelectedSize = size
			}
			if colour != "" {
				s.cart[i].SelectedColor = colour
			}
			return
		}
	}
}

// SetSearchQuery stores the free-text query. The listing view intentionally
// does not filter by it yet.
func (s *State) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetCheckoutStep moves the checkout stepper, clamped to the defined range.
func (s *State) SetCheckoutStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if step < CheckoutStepAddress {
		step = CheckoutStepAddress
	}
	if step > CheckoutStepConfirm {
		step = CheckoutStepConfirm
	}
	s.checkoutStep = step
}

// CartCount returns the total number of units across all entries.
func (s *State) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price times quantity across the cart.
func (s *State) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.cart)
}

// Snapshot returns a deep copy of the session so view builders never alias
// the live cart slice or user struct.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := make([]domain.CartItem, len(s.cart))
	copy(cart, s.cart)

	var user *domain.User
	if s.user != nil {
		dup := *s.user
		user = &dup
	}

	return Snapshot{
		User:              user,
		View:              s.view,
		SelectedProductID: s.selectedID,
		Cart:              cart,
		SearchQuery:       s.searchQuery,
		CheckoutStep:      s.checkoutStep,
	}
}

func subtotal(items []domain.CartItem) int64 {
	var sum int64
	for _, item := range items {
		if item.Quantity <= 0 || item.Product.Price <= 0 {
			continue
		}
		sum += item.LineTotal()
	}
	return sum
}

// Subtotal sums the snapshot's cart the same way the live state does.
func (s Snapshot) Subtotal() int64 {
	return subtotal(s.Cart)
}

// CartCount returns the total units in the snapshot's cart.
func (s Snapshot) CartCount() int {
	count := 0
	for _, item := range s.Cart {
		count += item.Quantity
	}
	return count
}
