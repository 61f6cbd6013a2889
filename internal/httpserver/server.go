// Package httpserver is the demo's process boundary: it exposes the view
// models as JSON and the session mutations as POST endpoints. It adds no
// validation beyond the clamping semantics the state core already defines,
// no authentication, and no persistence.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fakhama-store/storefront/internal/advice"
	"github.com/fakhama-store/storefront/internal/auth"
	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/chat"
	"github.com/fakhama-store/storefront/internal/reporting"
	"github.com/fakhama-store/storefront/internal/views"
)

// Config wires the server's collaborators.
type Config struct {
	Catalog    *catalog.Catalog
	Reports    reporting.Service
	Advice     *advice.Service
	Auth       *auth.Service
	Logger     *zap.Logger
	CookieName string
	SigningKey []byte
	ChatOpts   chat.Options
}

// Server carries the storefront's HTTP handlers.
type Server struct {
	catalog  *catalog.Catalog
	reports  reporting.Service
	auth     *auth.Service
	logger   *zap.Logger
	store    *sessionStore
	chatOpts chat.Options
}

// New constructs the server. Catalog, Reports and Auth are required; a nil
// Advice service is replaced with the unconfigured fallback service.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	adviceSvc := cfg.Advice
	if adviceSvc == nil {
		adviceSvc = advice.NewService(nil, logger)
	}
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "fakhama_session"
	}

	return &Server{
		catalog:  cfg.Catalog,
		reports:  cfg.Reports,
		auth:     cfg.Auth,
		logger:   logger,
		store:    newSessionStore(cookieName, cfg.SigningKey, adviceSvc, logger),
		chatOpts: cfg.ChatOpts,
	}
}

// Routes assembles the router with the middleware stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(s.sessionMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handlePage)

	r.Post("/session/view", s.handleSetView)
	r.Post("/session/search", s.handleSetSearch)
	r.Post("/products/{id}/select", s.handleSelectProduct)

	r.Post("/cart/items", s.handleAddToCart)
	r.Delete("/cart/items/{id}", s.handleRemoveFromCart)
	r.Patch("/cart/items/{id}", s.handleUpdateQuantity)
	r.Post("/checkout/step", s.handleCheckoutStep)

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/guest", s.handleGuest)
	r.Post("/auth/logout", s.handleLogout)

	r.Post("/advice", s.handleAdvice)
	r.Get("/chat/messages", s.handleChatMessages)
	r.Post("/chat/messages", s.handleChatSend)
	r.Delete("/chat", s.handleChatClose)

	return r
}

// HTTPServer wraps the routes in an http.Server with the given timeouts.
func (s *Server) HTTPServer(addr string, readTimeout, writeTimeout, idleTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// page builds the current view model for the request's visit.
func (s *Server) page(r *http.Request) (views.Page, error) {
	v := visitFrom(r.Context())
	return views.Build(r.Context(), v.state.Snapshot(), views.Deps{
		Catalog: s.catalog,
		Reports: s.reports,
	})
}
