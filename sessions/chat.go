package sessions

import (
	"context"
	"strings"

	"lingo-tutor/api"
)

// ChatBackend is the slice of the API the chat session needs.
type ChatBackend interface {
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
}

// Turn is one message in the on-screen conversation.
type Turn struct {
	FromUser bool
	Text     string
	IsError  bool
}

// ChatSession holds the visible conversation and the learner's running
// progress counters. The backend keeps its own durable history; this state is
// only what the current screen shows.
type ChatSession struct {
	backend ChatBackend
	mode    Mode
	level   string

	turns    []Turn
	progress api.Progress
}

func NewChatSession(backend ChatBackend, level string) *ChatSession {
	return &ChatSession{
		backend: backend,
		mode:    ModeChat,
		level:   level,
	}
}

// SetMode tags outgoing messages so the backend can tune its persona, e.g.
// writing mode asks for stricter grammar correction.
func (s *ChatSession) SetMode(m Mode) {
	s.mode = m
}

func (s *ChatSession) Mode() Mode {
	return s.mode
}

func (s *ChatSession) Turns() []Turn {
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

func (s *ChatSession) Progress() api.Progress {
	return s.progress
}

func (s *ChatSession) SetProgress(p api.Progress) {
	s.progress = p
}

// SendMessage sends one learner message and appends both sides of the
// exchange. A backend failure is recorded as an inline assistant turn so the
// conversation stays usable; the session never loses the learner's message.
func (s *ChatSession) SendMessage(ctx context.Context, message string) (*Turn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	s.turns = append(s.turns, Turn{FromUser: true, Text: message})

	resp, err := s.backend.Chat(ctx, api.ChatRequest{
		Message: message,
		Mode:    string(s.mode),
		Level:   s.level,
	})
	if err != nil {
		errTurn := Turn{Text: "Sorry, I couldn't reach the server. Please try again. (" + err.Error() + ")", IsError: true}
		s.turns = append(s.turns, errTurn)
		return &errTurn, nil
	}

	botTurn := Turn{Text: resp.Response}
	s.turns = append(s.turns, botTurn)
	if resp.Progress != nil {
		s.progress = *resp.Progress
	}
	return &botTurn, nil
}
