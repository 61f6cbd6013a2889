package views

import (
	"fmt"

	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/domain"
	"github.com/fakhama-store/storefront/internal/session"
)

// Review is a fixture testimonial shown under the product details.
type Review struct {
	Initial string `json:"initial"`
	Stars   int    `json:"stars"`
	Text    string `json:"text"`
}

// DetailView models the product page. Found is false when the selected ID is
// not in the catalog; the screen renders a not-found state instead of
// failing.
type DetailView struct {
	Found           bool            `json:"found"`
	Product         *domain.Product `json:"product,omitempty"`
	PriceLabel      string          `json:"priceLabel,omitempty"`
	Reviews         []Review        `json:"reviews,omitempty"`
	NotFoundMessage string          `json:"notFoundMessage,omitempty"`
}

var detailReviews = []Review{
	{
		Initial: "س",
		Stars:   5,
		Text:    "تجربة ممتازة جداً، الساعة وصلت مغلفة بشكل فخم والتوصيل كان أسرع مما توقعت. شكراً فخامة!",
	},
	{
		Initial: "م",
		Stars:   5,
		Text:    "الجودة لا يعلى عليها، والتطبيق سهل الاستخدام. الله يوفقكم.",
	},
}

func buildDetail(snap session.Snapshot, cat *catalog.Catalog) *DetailView {
	product, ok := cat.Product(snap.SelectedProductID)
	if !ok {
		return &DetailView{
			Found:           false,
			NotFoundMessage: "المنتج غير موجود",
		}
	}

	reviews := make([]Review, len(detailReviews))
	copy(reviews, detailReviews)

	return &DetailView{
		Found:      true,
		Product:    &product,
		PriceLabel: fmt.Sprintf("إضافة للسلة - %d ر.س", product.Price),
		Reviews:    reviews,
	}
}
