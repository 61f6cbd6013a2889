package reporting

import "context"

// StaticService provides canned dashboard numbers for the demo.
type StaticService struct {
	Cards []StatCard
	Sales []CategorySales
}

// NewStaticService returns a StaticService populated with the demo figures
// when none are supplied.
func NewStaticService() *StaticService {
	return &StaticService{
		Cards: []StatCard{
			{ID: "sales", Title: "المبيعات", Value: "240,000", Unit: "ر.س"},
			{ID: "orders", Title: "الطلبات", Value: "1,450", Unit: "طلب"},
			{ID: "visitors", Title: "الزوار", Value: "85,000", Unit: "زائر"},
			{ID: "customers", Title: "العملاء", Value: "400", Unit: "جديد"},
		},
		Sales: []CategorySales{
			{Category: "ساعات", Sales: 4000},
			{Category: "عطور", Sales: 3000},
			{Category: "حقائب", Sales: 2000},
			{Category: "مجوهرات", Sales: 2780},
			{Category: "أحذية", Sales: 1890},
		},
	}
}

// StatCards returns the headline tiles.
func (s *StaticService) StatCards(ctx context.Context) ([]StatCard, error) {
	out := make([]StatCard, len(s.Cards))
	copy(out, s.Cards)
	return out, nil
}

// SalesByCategory returns the chart series.
func (s *StaticService) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	out := make([]CategorySales, len(s.Sales))
	copy(out, s.Sales)
	return out, nil
}
