package domain

// Role identifies the access tier of the signed-in shopper.
type Role string

const (
	// RoleUser is a regular registered shopper.
	RoleUser Role = "user"
	// RoleAdmin grants access to the store administration screens.
	RoleAdmin Role = "admin"
	// RoleVendor identifies marketplace vendors.
	RoleVendor Role = "vendor"
	// RoleGuest is the anonymous browsing identity.
	RoleGuest Role = "guest"
)

// User captures the identity of the current visit. Absence of a user (nil)
// means nobody is signed in yet.
type User struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
}

// IsGuest reports whether the user browses anonymously. A nil user counts as
// a guest so access checks degrade safely before sign-in.
func (u *User) IsGuest() bool {
	return u == nil || u.Role == RoleGuest
}

// Product is a single catalog entry. Products are immutable fixture data;
// nothing in the application mutates them after load.
type Product struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Price       int64   `json:"price" yaml:"price"`
	Category    string  `json:"category" yaml:"category"`
	Image       string  `json:"image" yaml:"image"`
	Rating      float64 `json:"rating" yaml:"rating"`
	ReviewCount int     `json:"reviewCount" yaml:"reviews_count"`
	IsNew       bool    `json:"isNew,omitempty" yaml:"is_new"`
	IsTrending  bool    `json:"isTrending,omitempty" yaml:"is_trending"`
	Description string  `json:"description,omitempty" yaml:"description"`
}

// Category groups products for the storefront navigation tiles.
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// CartItem pairs a product with a purchase quantity and the optional variant
// the shopper picked. The cart holds at most one entry per product ID.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

// LineTotal returns the price contribution of this entry.
func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// View enumerates the top-level screens the router can display. The set is
// closed; unrecognised values resolve to ViewHome at render time.
type View string

const (
	ViewAuth           View = "auth"
	ViewHome           View = "home"
	ViewListing        View = "listing"
	ViewDetail         View = "detail"
	ViewCart           View = "cart"
	ViewCheckout       View = "checkout"
	ViewUserDashboard  View = "user_dashboard"
	ViewAdminDashboard View = "admin_dashboard"
)

// Views lists every defined view in display order.
func Views() []View {
	return []View{
		ViewAuth,
		ViewHome,
		ViewListing,
		ViewDetail,
		ViewCart,
		ViewCheckout,
		ViewUserDashboard,
		ViewAdminDashboard,
	}
}

// Known reports whether v belongs to the closed view enumeration.
func (v View) Known() bool {
	switch v {
	case ViewAuth, ViewHome, ViewListing, ViewDetail, ViewCart,
		ViewCheckout, ViewUserDashboard, ViewAdminDashboard:
		return true
	}
	return false
}
