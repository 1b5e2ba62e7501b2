package sessions

import (
	"context"
	"errors"
	"testing"

	"lingo-tutor/api"
)

type mockChatBackend struct {
	resp  *api.ChatResponse
	err   error
	calls int
	last  api.ChatRequest
}

func (m *mockChatBackend) Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	m.calls++
	m.last = req
	return m.resp, m.err
}

func TestChatSendMessage(t *testing.T) {
	backend := &mockChatBackend{resp: &api.ChatResponse{
		Response: "Hello! How are you?",
		Progress: &api.Progress{TotalConversations: 1},
	}}
	s := NewChatSession(backend, "B1")
	s.SetMode(ModeWriting)

	turn, err := s.SendMessage(context.Background(), "  hi there  ")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if turn.Text != "Hello! How are you?" {
		t.Errorf("bot turn = %q", turn.Text)
	}
	if backend.last.Message != "hi there" {
		t.Errorf("message sent = %q, want trimmed", backend.last.Message)
	}
	if backend.last.Mode != "writing" || backend.last.Level != "B1" {
		t.Errorf("request tagged mode=%q level=%q", backend.last.Mode, backend.last.Level)
	}

	turns := s.Turns()
	if len(turns) != 2 || !turns[0].FromUser || turns[1].FromUser {
		t.Fatalf("turns = %+v, want user then bot", turns)
	}
	if s.Progress().TotalConversations != 1 {
		t.Errorf("progress not updated: %+v", s.Progress())
	}
}

func TestChatEmptyMessageRejectedLocally(t *testing.T) {
	backend := &mockChatBackend{}
	s := NewChatSession(backend, "A1")

	if _, err := s.SendMessage(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
	if backend.calls != 0 {
		t.Fatal("empty message reached the backend")
	}
	if len(s.Turns()) != 0 {
		t.Fatal("empty message added a turn")
	}
}

func TestChatBackendErrorBecomesInlineTurn(t *testing.T) {
	backend := &mockChatBackend{err: errors.New("connection refused")}
	s := NewChatSession(backend, "A1")

	turn, err := s.SendMessage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("SendMessage should absorb backend errors, got %v", err)
	}
	if !turn.IsError {
		t.Fatal("error turn not flagged")
	}

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want user turn plus error turn", len(turns))
	}
	if !turns[0].FromUser || turns[0].Text != "hello" {
		t.Errorf("user turn lost: %+v", turns[0])
	}

	// The session stays usable afterwards.
	backend.err = nil
	backend.resp = &api.ChatResponse{Response: "back online"}
	if _, err := s.SendMessage(context.Background(), "still there?"); err != nil {
		t.Fatalf("follow-up failed: %v", err)
	}
	if len(s.Turns()) != 4 {
		t.Fatalf("turns = %d, want 4", len(s.Turns()))
	}
}
