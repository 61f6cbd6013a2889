package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fakhama-store/storefront/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response failed", zap.Error(err))
	}
}

func (s *Server) respondPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.page(r)
	if err != nil {
		s.logger.Error("build page failed", zap.Error(err))
		s.respond(w, http.StatusInternalServerError, errorResponse{Error: "render failed"})
		return
	}
	s.respond(w, http.StatusOK, page)
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.respondPage(w, r)
}

func (s *Server) handleSetView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		View string `json:"view"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	// Unknown view values are stored as-is; the router falls back to home
	// on the next render.
	visitFrom(r.Context()).state.SetView(domain.View(body.View))
	s.respondPage(w, r)
}

func (s *Server) handleSetSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	visitFrom(r.Context()).state.SetSearchQuery(body.Query)
	s.respondPage(w, r)
}

func (s *Server) handleSelectProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	// Selection always succeeds, even for unknown IDs; the detail view
	// renders its not-found state instead.
	visitFrom(r.Context()).state.SelectProduct(id)
	s.respondPage(w, r)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int `json:"productId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	product, ok := s.catalog.Product(body.ProductID)
	if !ok {
		s.respond(w, http.StatusNotFound, errorResponse{Error: "product not found"})
		return
	}
	visitFrom(r.Context()).state.AddToCart(product)
	s.respondPage(w, r)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	// Removing an absent entry is a silent no-op, not an error.
	visitFrom(r.Context()).state.RemoveFromCart(id)
	s.respondPage(w, r)
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	var body struct {
		Delta int `json:"delta"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	visitFrom(r.Context()).state.UpdateQuantity(id, body.Delta)
	s.respondPage(w, r)
}

func (s *Server) handleCheckoutStep(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Step int `json:"step"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	visitFrom(r.Context()).state.SetCheckoutStep(body.Step)
	s.respondPage(w, r)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	// The request context bounds the simulated exchange: a dropped client
	// cancels the pending continuation without touching the session.
	user, err := s.auth.SignIn(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away mid-exchange; nothing to report.
			return
		}
		s.respond(w, http.StatusInternalServerError, errorResponse{Error: "sign-in failed"})
		return
	}

	state := visitFrom(r.Context()).state
	state.SetUser(&user)
	state.SetView(domain.ViewHome)
	s.respondPage(w, r)
}

func (s *Server) handleGuest(w http.ResponseWriter, r *http.Request) {
	guest := s.auth.Guest()
	state := visitFrom(r.Context()).state
	state.SetUser(&guest)
	state.SetView(domain.ViewHome)
	s.respondPage(w, r)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	v := visitFrom(r.Context())
	v.state.SetUser(nil)
	v.state.SetView(domain.ViewAuth)
	v.closeChat()
	s.respondPage(w, r)
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	answer := visitFrom(r.Context()).widget.Ask(r.Context(), body.Query)
	s.respond(w, http.StatusOK, map[string]any{
		"text":     answer.Text,
		"html":     string(answer.HTML),
		"fallback": answer.Fallback,
	})
}

func (s *Server) handleChatMessages(w http.ResponseWriter, r *http.Request) {
	conv := visitFrom(r.Context()).conversation(s.chatOpts)
	s.respond(w, http.StatusOK, map[string]any{"messages": conv.Messages()})
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	conv := visitFrom(r.Context()).conversation(s.chatOpts)
	if _, ok := conv.Send(body.Text); !ok {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "empty message"})
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"messages": conv.Messages()})
}

func (s *Server) handleChatClose(w http.ResponseWriter, r *http.Request) {
	visitFrom(r.Context()).closeChat()
	s.respond(w, http.StatusNoContent, nil)
}
