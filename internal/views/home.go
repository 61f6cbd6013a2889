package views

import (
	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/domain"
)

const bestSellerCount = 3

// HomeView models the landing screen: hero, advice slot, category tiles and
// the curated best-seller strip.
type HomeView struct {
	HeroBadge      string            `json:"heroBadge"`
	HeroTitle      string            `json:"heroTitle"`
	HeroSubtitle   string            `json:"heroSubtitle"`
	AdvicePrompt   string            `json:"advicePrompt"`
	Categories     []domain.Category `json:"categories"`
	BestSellers    []domain.Product  `json:"bestSellers"`
	RecentSearches []string          `json:"recentSearches"`
}

func buildHome(cat *catalog.Catalog) *HomeView {
	return &HomeView{
		HeroBadge:      "وصل حديثاً 🔥",
		HeroTitle:      "الأناقة السعودية",
		HeroSubtitle:   "اكتشف تشكيلة حصرية من أرقى المنتجات العالمية والمحلية، مختارة بعناية لتناسب ذوقك الرفيع.",
		AdvicePrompt:   "محتار وش تهدي؟ اسألني...",
		Categories:     cat.Categories(),
		BestSellers:    cat.BestSellers(bestSellerCount),
		RecentSearches: cat.RecentSearches(),
	}
}
