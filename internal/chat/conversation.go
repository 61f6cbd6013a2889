// Package chat implements the fully simulated support conversation: user
// messages append immediately and a scripted agent reply lands after a fixed
// delay. There is no transport; "sent" is indistinguishable from
// "delivered". Pending replies are cancelable tasks tied to the
// conversation's lifetime, so closing the conversation drops them instead of
// leaving timers dangling.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// Greeting opens every conversation, attributed to the agent.
	Greeting = "يا هلا بك في فخامة! 💜 آمرني كيف أقدر أخدمك اليوم؟"
	// ScriptedReply is the canned agent answer to any user message.
	ScriptedReply = "أبشر، جاري التحقق من الموضوع ولا يهمك..."

	defaultReplyDelay = 1500 * time.Millisecond
)

// Sender identifies which party a message is attributed to.
type Sender string

const (
	// SenderUser marks shopper-authored messages.
	SenderUser Sender = "user"
	// SenderAgent marks scripted counterparty messages.
	SenderAgent Sender = "agent"
)

// Message is one entry in the conversation log.
type Message struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Sender Sender    `json:"sender"`
	SentAt time.Time `json:"sentAt"`
}

// Options tune a conversation; zero values pick the defaults.
type Options struct {
	ReplyDelay time.Duration
	Now        func() time.Time
	NewID      func() string
}

// Conversation is a two-party message log owned by a single session.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc

	replyDelay time.Duration
	now        func() time.Time
	newID      func() string
	pending    sync.WaitGroup
}

// New starts a conversation seeded with the agent greeting. The supplied
// context bounds the conversation's lifetime; canceling it (or calling
// Close) drops any scheduled replies.
func New(ctx context.Context, opts Options) *Conversation {
	if ctx == nil {
		ctx = context.Background()
	}
	cctx, cancel := context.WithCancel(ctx)

	c := &Conversation{
		ctx:        cctx,
		cancel:     cancel,
		replyDelay: opts.ReplyDelay,
		now:        opts.Now,
		newID:      opts.NewID,
	}
	if c.replyDelay <= 0 {
		c.replyDelay = defaultReplyDelay
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = func() string { return ulid.Make().String() }
	}

	c.messages = []Message{{
		ID:     c.newID(),
		Text:   Greeting,
		Sender: SenderAgent,
		SentAt: c.now(),
	}}
	return c
}

// Send appends the shopper's message immediately and schedules the scripted
// agent reply. Blank messages are ignored. Sending on a closed conversation
// is a no-op.
func (c *Conversation) Send(text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Message{}, false
	}
	msg := Message{
		ID:     c.newID(),
		Text:   text,
		Sender: SenderUser,
		SentAt: c.now(),
	}
	c.messages = append(c.messages, msg)
	c.mu.Unlock()

	c.scheduleReply()
	return msg, true
}

func (c *Conversation) scheduleReply() {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		timer := time.NewTimer(c.replyDelay)
		defer timer.Stop()

		select {
		case <-c.ctx.Done():
			return
		case <-timer.C:
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		c.messages = append(c.messages, Message{
			ID:     c.newID(),
			Text:   ScriptedReply,
			Sender: SenderAgent,
			SentAt: c.now(),
		})
	}()
}

// Messages returns a copy of the log in arrival order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Close tears the conversation down, canceling scheduled replies. It waits
// for in-flight reply goroutines to observe the cancellation.
func (c *Conversation) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.pending.Wait()
}
