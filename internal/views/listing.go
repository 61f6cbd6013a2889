package views

import (
	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/domain"
	"github.com/fakhama-store/storefront/internal/session"
)

// ListingView models the product grid with its category sidebar. The stored
// search query is echoed for display but does not filter the grid.
type ListingView struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Query      string            `json:"query"`
}

func buildListing(snap session.Snapshot, cat *catalog.Catalog) *ListingView {
	return &ListingView{
		Categories: cat.Categories(),
		Products:   cat.Products(),
		Query:      snap.SearchQuery,
	}
}
