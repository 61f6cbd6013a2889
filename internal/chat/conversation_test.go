package chat

import (
	"context"
	"testing"
	"time"
)

func waitForMessages(t *testing.T, c *Conversation, want int) []Message {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := c.Messages(); len(msgs) >= want {
			return msgs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d messages, have %d", want, len(c.Messages()))
	return nil
}

func TestConversationOpensWithGreeting(t *testing.T) {
	c := New(context.Background(), Options{ReplyDelay: time.Millisecond})
	defer c.Close()

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(msgs))
	}
	if msgs[0].Sender != SenderAgent || msgs[0].Text != Greeting {
		t.Fatalf("unexpected greeting: %+v", msgs[0])
	}
}

func TestSendAppendsImmediatelyThenScriptedReply(t *testing.T) {
	c := New(context.Background(), Options{ReplyDelay: 5 * time.Millisecond})
	defer c.Close()

	msg, ok := c.Send("عندي مشكلة في طلبي")
	if !ok {
		t.Fatalf("expected send to succeed")
	}
	if msg.Sender != SenderUser {
		t.Fatalf("expected user attribution, got %q", msg.Sender)
	}

	// User message is visible before the reply lands.
	if msgs := c.Messages(); len(msgs) < 2 || msgs[1].Text != "عندي مشكلة في طلبي" {
		t.Fatalf("expected immediate append, got %+v", msgs)
	}

	msgs := waitForMessages(t, c, 3)
	last := msgs[len(msgs)-1]
	if last.Sender != SenderAgent || last.Text != ScriptedReply {
		t.Fatalf("expected scripted agent reply, got %+v", last)
	}
}

func TestCloseCancelsPendingReply(t *testing.T) {
	c := New(context.Background(), Options{ReplyDelay: 50 * time.Millisecond})

	if _, ok := c.Send("سؤال"); !ok {
		t.Fatalf("expected send to succeed")
	}
	c.Close()

	time.Sleep(100 * time.Millisecond)
	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected pending reply dropped, got %d messages", len(msgs))
	}
}

func TestParentContextCancellationDropsReply(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := New(ctx, Options{ReplyDelay: 50 * time.Millisecond})

	if _, ok := c.Send("سؤال"); !ok {
		t.Fatalf("expected send to succeed")
	}
	cancel()

	time.Sleep(100 * time.Millisecond)
	if msgs := c.Messages(); len(msgs) != 2 {
		t.Fatalf("expected reply dropped after parent cancellation, got %d", len(msgs))
	}
}

func TestSendOnClosedConversationIsNoop(t *testing.T) {
	c := New(context.Background(), Options{ReplyDelay: time.Millisecond})
	c.Close()

	if _, ok := c.Send("متأخر"); ok {
		t.Fatalf("expected send on closed conversation to be refused")
	}
	if msgs := c.Messages(); len(msgs) != 1 {
		t.Fatalf("expected log unchanged, got %d messages", len(msgs))
	}
}

func TestBlankMessageIgnored(t *testing.T) {
	c := New(context.Background(), Options{ReplyDelay: time.Millisecond})
	defer c.Close()

	if _, ok := c.Send("   "); ok {
		t.Fatalf("expected blank message to be ignored")
	}
}

func TestMessageIDsAreUnique(t *testing.T) {
	c := New(context.Background(), Options{ReplyDelay: 5 * time.Millisecond})
	defer c.Close()

	c.Send("أول")
	c.Send("ثاني")
	msgs := waitForMessages(t, c, 5)

	seen := make(map[string]bool, len(msgs))
	for _, m := range msgs {
		if seen[m.ID] {
			t.Fatalf("duplicate message id %q", m.ID)
		}
		seen[m.ID] = true
	}
}
