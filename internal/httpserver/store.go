package httpserver

import (
	"context"
	"crypto/rand"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/fakhama-store/storefront/internal/advice"
	"github.com/fakhama-store/storefront/internal/chat"
	"github.com/fakhama-store/storefront/internal/session"
)

// visit bundles everything owned by one browsing session: the state core,
// the advice widget, and (once opened) the support conversation.
type visit struct {
	id     string
	state  *session.State
	widget *advice.Widget

	mu   sync.Mutex
	chat *chat.Conversation
}

// conversation lazily opens the support chat for this visit.
func (v *visit) conversation(opts chat.Options) *chat.Conversation {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.chat == nil {
		v.chat = chat.New(context.Background(), opts)
	}
	return v.chat
}

// closeChat tears down the conversation, dropping any scheduled replies.
// The next open starts a fresh log.
func (v *visit) closeChat() {
	v.mu.Lock()
	conv := v.chat
	v.chat = nil
	v.mu.Unlock()
	if conv != nil {
		conv.Close()
	}
}

// sessionStore keeps the in-memory visit registry keyed by a signed cookie.
// Nothing survives a process restart; a reload of the process discards all
// state by design.
type sessionStore struct {
	mu         sync.Mutex
	visits     map[string]*visit
	codec      *securecookie.SecureCookie
	cookieName string
	adviceSvc  *advice.Service
	newID      func() string
}

func newSessionStore(cookieName string, signingKey []byte, adviceSvc *advice.Service, logger *zap.Logger) *sessionStore {
	if len(signingKey) == 0 {
		// Process-ephemeral key; fine for a demo, sessions die with the
		// process anyway.
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			logger.Warn("session signing key generation failed, using static dev key", zap.Error(err))
			signingKey = []byte("insecure-dev-key-set-STOREFRONT_SESSION_SIGNING_KEY")
		}
	}

	codec := securecookie.New(signingKey, nil)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &sessionStore{
		visits:     make(map[string]*visit),
		codec:      codec,
		cookieName: cookieName,
		adviceSvc:  adviceSvc,
		newID:      uuid.NewString,
	}
}

// load resolves the request's visit, creating one (and setting the cookie)
// when the request carries no valid session.
func (s *sessionStore) load(w http.ResponseWriter, r *http.Request) *visit {
	if cookie, err := r.Cookie(s.cookieName); err == nil {
		var id string
		if err := s.codec.Decode(s.cookieName, cookie.Value, &id); err == nil {
			s.mu.Lock()
			v, ok := s.visits[id]
			s.mu.Unlock()
			if ok {
				return v
			}
		}
	}

	v := &visit{
		id:     s.newID(),
		state:  session.NewState(),
		widget: advice.NewWidget(s.adviceSvc),
	}

	s.mu.Lock()
	s.visits[v.id] = v
	s.mu.Unlock()

	if encoded, err := s.codec.Encode(s.cookieName, v.id); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     s.cookieName,
			Value:    encoded,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return v
}

type visitContextKey struct{}

// withVisit stores the visit in the request context.
func withVisit(ctx context.Context, v *visit) context.Context {
	return context.WithValue(ctx, visitContextKey{}, v)
}

// visitFrom retrieves the visit attached by the session middleware.
func visitFrom(ctx context.Context) *visit {
	v, _ := ctx.Value(visitContextKey{}).(*visit)
	return v
}
