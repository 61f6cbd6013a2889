package advice

import (
	"context"
	"sync"
)

// Widget holds the advice box's local UI state: the loading flag and the
// latest answer. Concurrent asks are deliberately unguarded; each resolves
// independently and the last writer wins, mirroring the storefront's
// fire-and-forget behaviour.
type Widget struct {
	svc *Service

	mu       sync.Mutex
	pending  int
	response *Answer
}

// WidgetState is a copy of the widget's observable state.
type WidgetState struct {
	Loading  bool
	Response *Answer
}

// NewWidget wraps the service with per-widget state.
func NewWidget(svc *Service) *Widget {
	return &Widget{svc: svc}
}

// Ask performs the exchange, tracking the loading flag for its duration.
func (w *Widget) Ask(ctx context.Context, query string) Answer {
	w.mu.Lock()
	w.pending++
	w.mu.Unlock()

	answer := w.svc.Ask(ctx, query)

	w.mu.Lock()
	w.pending--
	dup := answer
	w.response = &dup
	w.mu.Unlock()

	return answer
}

// State reports the current loading flag and last answer.
func (w *Widget) State() WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := WidgetState{Loading: w.pending > 0}
	if w.response != nil {
		dup := *w.response
		state.Response = &dup
	}
	return state
}
