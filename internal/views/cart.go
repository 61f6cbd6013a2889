package views

import (
	"github.com/fakhama-store/storefront/internal/domain"
	"github.com/fakhama-store/storefront/internal/session"
)

// ShippingFee is the flat delivery charge applied to non-empty carts.
const ShippingFee int64 = 25

// CartView models the basket screen with its line items and summary.
type CartView struct {
	Items    []domain.CartItem `json:"items"`
	Empty    bool              `json:"empty"`
	Subtotal int64             `json:"subtotal"`
	Shipping int64             `json:"shipping"`
	Total    int64             `json:"total"`
}

func buildCart(snap session.Snapshot) *CartView {
	subtotal := snap.Subtotal()

	view := &CartView{
		Items:    snap.Cart,
		Empty:    len(snap.Cart) == 0,
		Subtotal: subtotal,
	}
	if !view.Empty {
		view.Shipping = ShippingFee
		view.Total = subtotal + ShippingFee
	}
	return view
}
