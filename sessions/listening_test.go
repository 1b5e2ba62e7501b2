package sessions

import (
	"context"
	"errors"
	"math"
	"testing"

	"lingo-tutor/api"
	"lingo-tutor/speech"
)

type mockListeningBackend struct {
	sentence   string
	checkCalls int
	lastCheck  api.CheckAnswerRequest
	isCorrect  bool
}

func (m *mockListeningBackend) ListeningSentence(ctx context.Context, difficulty, topic string) (string, error) {
	return m.sentence, nil
}

func (m *mockListeningBackend) CheckListeningAnswer(ctx context.Context, req api.CheckAnswerRequest) (*api.CheckAnswerResponse, error) {
	m.checkCalls++
	m.lastCheck = req
	return &api.CheckAnswerResponse{Success: true, IsCorrect: m.isCorrect, Feedback: "ok"}, nil
}

type mockSynth struct {
	spoken []speech.Utterance
}

func (m *mockSynth) Speak(ctx context.Context, u speech.Utterance) error {
	m.spoken = append(m.spoken, u)
	return nil
}

func (m *mockSynth) Cancel() {}

func (m *mockSynth) Voices() []speech.Voice { return nil }

func TestListeningRates(t *testing.T) {
	tests := []struct {
		difficulty string
		baseSpeed  float64
		slow       bool
		want       float64
	}{
		{"easy", 1.0, false, 0.85},
		{"medium", 1.0, false, 1.0},
		{"hard", 1.0, false, 1.1},
		{"easy", 1.0, true, 0.6},
		{"hard", 1.0, true, 0.6},
		{"medium", 1.2, false, 1.2},
		{"hard", 0.5, true, 0.3},
	}
	for _, tt := range tests {
		backend := &mockListeningBackend{sentence: "hello there"}
		l := NewListening(backend, &mockSynth{}, tt.baseSpeed, nil, "en-US")
		if err := l.Start(context.Background(), tt.difficulty, "all"); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if got := l.Rate(tt.slow); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Rate(%s, slow=%v, base=%.2f) = %.3f, want %.3f",
				tt.difficulty, tt.slow, tt.baseSpeed, got, tt.want)
		}
	}
}

func TestListeningPlayCount(t *testing.T) {
	backend := &mockListeningBackend{sentence: "the cat sat"}
	synth := &mockSynth{}
	l := NewListening(backend, synth, 1.0, nil, "en-US")

	if err := l.Play(context.Background(), false); !errors.Is(err, ErrNoSentence) {
		t.Fatalf("Play before Start err = %v, want ErrNoSentence", err)
	}

	if err := l.Start(context.Background(), "medium", "all"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	l.Play(context.Background(), false)
	l.Play(context.Background(), true)
	l.Play(context.Background(), false)
	if l.PlayCount() != 3 {
		t.Fatalf("PlayCount = %d, want 3 (slow replays count)", l.PlayCount())
	}
	if len(synth.spoken) != 3 {
		t.Fatalf("spoke %d times, want 3", len(synth.spoken))
	}
	if synth.spoken[1].Rate != 0.6 {
		t.Errorf("slow replay rate = %.2f, want 0.6", synth.spoken[1].Rate)
	}

	if err := l.Start(context.Background(), "medium", "all"); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}
	if l.PlayCount() != 0 {
		t.Fatalf("PlayCount = %d after new sentence, want 0", l.PlayCount())
	}
}

func TestListeningSubmit(t *testing.T) {
	backend := &mockListeningBackend{sentence: "good morning", isCorrect: true}
	l := NewListening(backend, &mockSynth{}, 1.0, nil, "en-US")
	if err := l.Start(context.Background(), "easy", "greetings"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	l.Play(context.Background(), false)
	l.Play(context.Background(), false)

	if _, err := l.Submit(context.Background(), "   "); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("blank answer err = %v, want ErrEmptyAnswer", err)
	}
	if backend.checkCalls != 0 {
		t.Fatal("blank answer reached the backend")
	}

	resp, err := l.Submit(context.Background(), " good morning ")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !resp.IsCorrect {
		t.Fatal("expected correct verdict")
	}
	if backend.lastCheck.Answer != "good morning" {
		t.Errorf("answer sent = %q, want trimmed", backend.lastCheck.Answer)
	}
	if backend.lastCheck.PlayCount != 2 {
		t.Errorf("play_count sent = %d, want 2", backend.lastCheck.PlayCount)
	}
}

func TestListeningStatsAccumulate(t *testing.T) {
	backend := &mockListeningBackend{sentence: "one two three", isCorrect: true}
	l := NewListening(backend, &mockSynth{}, 1.0, nil, "en-US")

	for i := 0; i < 3; i++ {
		if err := l.Start(context.Background(), "medium", "all"); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if i == 2 {
			backend.isCorrect = false
		}
		if _, err := l.Submit(context.Background(), "one two three"); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	stats := l.Stats()
	if stats.Attempts != 3 || stats.Correct != 2 {
		t.Fatalf("stats = %d/%d, want 2 correct of 3", stats.Correct, stats.Attempts)
	}
	if math.Abs(stats.Accuracy()-66.666) > 0.01 {
		t.Errorf("accuracy = %.3f, want ~66.666", stats.Accuracy())
	}
}

func TestListeningHint(t *testing.T) {
	backend := &mockListeningBackend{sentence: "Where is the station"}
	l := NewListening(backend, &mockSynth{}, 1.0, nil, "en-US")
	if err := l.Start(context.Background(), "medium", "all"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	hint, err := l.Hint()
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if hint != "W... (4 words)" {
		t.Errorf("hint = %q, want %q", hint, "W... (4 words)")
	}
}
