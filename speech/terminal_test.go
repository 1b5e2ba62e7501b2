package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestRecognizeOnceReadsLine(t *testing.T) {
	r := NewTerminalRecognizer(strings.NewReader("hello there\n"))
	tr, err := r.RecognizeOnce(context.Background(), RecognizeOptions{})
	if err != nil {
		t.Fatalf("RecognizeOnce failed: %v", err)
	}
	if tr.Text != "hello there" || !tr.Final {
		t.Errorf("transcript = %+v", tr)
	}
}

func TestRecognizeOnceBlankIsNoSpeech(t *testing.T) {
	r := NewTerminalRecognizer(strings.NewReader("   \n"))
	if _, err := r.RecognizeOnce(context.Background(), RecognizeOptions{}); !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("err = %v, want ErrNoSpeech", err)
	}
}

func TestRecognizeOnceTimeoutKeepsLineForNextRecognition(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewTerminalRecognizer(pr)

	// First recognition times out with nothing typed.
	_, err := r.RecognizeOnce(context.Background(), RecognizeOptions{MaxDuration: 20 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}

	// The learner types a line after the timeout. The read that the timed-out
	// recognition left behind must hand this line to the next recognition
	// instead of swallowing it.
	go pw.Write([]byte("hello\n"))

	done := make(chan Transcript, 1)
	errCh := make(chan error, 1)
	go func() {
		tr, err := r.RecognizeOnce(context.Background(), RecognizeOptions{})
		if err != nil {
			errCh <- err
			return
		}
		done <- tr
	}()

	select {
	case tr := <-done:
		if tr.Text != "hello" {
			t.Fatalf("transcript = %q, want hello", tr.Text)
		}
	case err := <-errCh:
		t.Fatalf("second recognition failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("second recognition never received the line typed after the timeout")
	}
}

func TestRecognizeStreamStopsOnBlankLine(t *testing.T) {
	r := NewTerminalRecognizer(strings.NewReader("first part\nsecond part\n\nleftover\n"))
	stream, err := r.RecognizeStream(context.Background(), RecognizeOptions{Continuous: true})
	if err != nil {
		t.Fatalf("RecognizeStream failed: %v", err)
	}

	var got []string
	for tr := range stream {
		got = append(got, tr.Text)
	}
	if len(got) != 2 || got[0] != "first part" || got[1] != "second part" {
		t.Fatalf("stream = %v, want the two lines before the blank", got)
	}
}

func TestSynthesizerLastWriterWins(t *testing.T) {
	var buf strings.Builder
	s := NewTerminalSynthesizer(&buf)

	if err := s.Speak(context.Background(), Utterance{Text: "spoken"}); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if !strings.Contains(buf.String(), "spoken") {
		t.Fatalf("output = %q", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Speak(ctx, Utterance{Text: "cancelled"}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if strings.Contains(buf.String(), "cancelled") {
		t.Fatal("cancelled utterance was printed")
	}
}
