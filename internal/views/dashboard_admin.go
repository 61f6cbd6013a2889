package views

import (
	"context"
	"errors"

	"github.com/fakhama-store/storefront/internal/reporting"
	"github.com/fakhama-store/storefront/internal/router"
)

// ErrReportsUnavailable indicates the dashboard metrics source is missing.
var ErrReportsUnavailable = errors.New("views: reporting service not configured")

// AdminDashboardView models the store administration screen.
type AdminDashboardView struct {
	Locked        bool                      `json:"locked"`
	LockedMessage string                    `json:"lockedMessage,omitempty"`
	Cards         []reporting.StatCard      `json:"cards,omitempty"`
	Sales         []reporting.CategorySales `json:"sales,omitempty"`
}

func buildAdminDashboard(ctx context.Context, access router.Access, reports reporting.Service) (*AdminDashboardView, error) {
	if access == router.AccessLocked {
		return &AdminDashboardView{
			Locked:        true,
			LockedMessage: lockedContentMessage,
		}, nil
	}

	if reports == nil {
		return nil, ErrReportsUnavailable
	}

	cards, err := reports.StatCards(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := reports.SalesByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboardView{
		Cards: cards,
		Sales: sales,
	}, nil
}
