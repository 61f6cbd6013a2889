package views

import (
	"github.com/fakhama-store/storefront/internal/domain"
	"github.com/fakhama-store/storefront/internal/router"
	"github.com/fakhama-store/storefront/internal/session"
)

// DashboardTab names one sidebar tab of the user dashboard.
type DashboardTab string

const (
	TabOrders     DashboardTab = "orders"
	TabFavorites  DashboardTab = "favorites"
	TabComplaints DashboardTab = "complaints"
	TabSettings   DashboardTab = "settings"
)

// Order is a fixture entry for the orders tab.
type Order struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// Ticket is a fixture entry for the complaints tab.
type Ticket struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Label  string `json:"label"`
}

// UserDashboardView models the account screen. When Locked is true the
// content area carries only the locked placeholder; the tabs and fixtures
// are omitted entirely.
type UserDashboardView struct {
	Locked        bool           `json:"locked"`
	LockedMessage string         `json:"lockedMessage,omitempty"`
	User          *domain.User   `json:"user,omitempty"`
	Tabs          []DashboardTab `json:"tabs,omitempty"`
	Orders        []Order        `json:"orders,omitempty"`
	Tickets       []Ticket       `json:"tickets,omitempty"`
	ChatAvailable bool           `json:"chatAvailable"`
}

var fixtureOrders = []Order{
	{ID: 1, Label: "طلب #1001", Status: "تم التوصيل", Total: 45250},
	{ID: 2, Label: "طلب #1002", Status: "قيد الشحن", Total: 3450},
	{ID: 3, Label: "طلب #1003", Status: "قيد المعالجة", Total: 950},
}

var fixtureTickets = []Ticket{
	{ID: 101, Title: "مشكلة في استرجاع منتج", Date: "أمس", Status: "open", Label: "جاري المعالجة"},
	{ID: 102, Title: "استفسار عن المقاسات", Date: "قبل أسبوع", Status: "closed", Label: "مغلقة"},
}

const lockedContentMessage = "سجل دخولك للاطلاع على طلباتك ومحادثاتك"

func buildUserDashboard(snap session.Snapshot, access router.Access) *UserDashboardView {
	if access == router.AccessLocked {
		return &UserDashboardView{
			Locked:        true,
			LockedMessage: lockedContentMessage,
		}
	}

	orders := make([]Order, len(fixtureOrders))
	copy(orders, fixtureOrders)
	tickets := make([]Ticket, len(fixtureTickets))
	copy(tickets, fixtureTickets)

	return &UserDashboardView{
		User:          snap.User,
		Tabs:          []DashboardTab{TabOrders, TabFavorites, TabComplaints, TabSettings},
		Orders:        orders,
		Tickets:       tickets,
		ChatAvailable: true,
	}
}
