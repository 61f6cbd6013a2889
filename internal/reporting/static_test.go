package reporting

import (
	"context"
	"testing"
)

func TestStaticServiceReturnsFixtureData(t *testing.T) {
	svc := NewStaticService()
	ctx := context.Background()

	cards, err := svc.StatCards(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 stat cards, got %d", len(cards))
	}

	sales, err := svc.SalesByCategory(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 5 {
		t.Fatalf("expected 5 category bars, got %d", len(sales))
	}
	for _, bar := range sales {
		if bar.Sales <= 0 {
			t.Fatalf("expected positive sales for %q", bar.Category)
		}
	}
}

func TestStaticServiceReturnsCopies(t *testing.T) {
	svc := NewStaticService()
	ctx := context.Background()

	cards, _ := svc.StatCards(ctx)
	cards[0].Value = "mutated"

	again, _ := svc.StatCards(ctx)
	if again[0].Value == "mutated" {
		t.Fatalf("expected fixture immune to caller mutation")
	}
}
