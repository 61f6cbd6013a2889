// Package catalog exposes the storefront's read-only product fixture. The
// data ships embedded in the binary; nothing is read from durable storage.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fakhama-store/storefront/internal/domain"
)

//go:embed fixture.yaml
var fixtureYAML []byte

type fixtureFile struct {
	Products       []domain.Product  `yaml:"products"`
	Categories     []domain.Category `yaml:"categories"`
	RecentSearches []string          `yaml:"recent_searches"`
}

// Catalog holds the immutable product and category set available for display.
type Catalog struct {
	products       []domain.Product
	byID           map[int]domain.Product
	categories     []domain.Category
	recentSearches []string
}

// Load decodes the embedded fixture and validates its invariants: unique
// positive product IDs, non-negative prices, ratings within [0, 5].
func Load() (*Catalog, error) {
	return load(fixtureYAML)
}

func load(raw []byte) (*Catalog, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode fixture: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog: fixture contains no products")
	}

	byID := make(map[int]domain.Product, len(file.Products))
	for _, p := range file.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("catalog: product %q has invalid id %d", p.Name, p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog: product %d has empty name", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: product %d has negative price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("catalog: product %d rating %.2f out of range", p.ID, p.Rating)
		}
		if p.ReviewCount < 0 {
			return nil, fmt.Errorf("catalog: product %d has negative review count", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{
		products:       file.Products,
		byID:           byID,
		categories:     file.Categories,
		recentSearches: file.RecentSearches,
	}, nil
}

// Products returns every catalog entry in fixture order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product looks up a single entry by ID. The second return reports whether
// the ID exists; callers render a not-found state instead of failing.
func (c *Catalog) Product(id int) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the storefront navigation categories.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// BestSellers returns the first n products, matching the storefront's
// curated "best sellers" strip.
func (c *Catalog) BestSellers(n int) []domain.Product {
	if n <= 0 || n > len(c.products) {
		n = len(c.products)
	}
	out := make([]domain.Product, n)
	copy(out, c.products[:n])
	return out
}

// RecentSearches returns the canned search suggestions.
func (c *Catalog) RecentSearches() []string {
	out := make([]string, len(c.recentSearches))
	copy(out, c.recentSearches)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
