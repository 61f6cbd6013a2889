// Package reporting supplies the admin dashboard's metrics. The demo ships a
// static implementation; the interface leaves room for a real source later.
package reporting

import "context"

// StatCard is a headline metric tile.
type StatCard struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// CategorySales is one bar of the sales-by-category chart.
type CategorySales struct {
	Category string `json:"category"`
	Sales    int64  `json:"sales"`
}

// Service exposes dashboard metric retrieval.
type Service interface {
	StatCards(ctx context.Context) ([]StatCard, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
}
