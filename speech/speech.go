package speech

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnavailable means the host has no speech capability at all.
	ErrUnavailable = errors.New("speech capability unavailable")
	// ErrNoSpeech means recognition finished without capturing anything.
	ErrNoSpeech = errors.New("no speech detected")
)

// Voice identifies an installed synthesis voice.
type Voice struct {
	Name string
	Lang string
}

// Utterance is a single synthesis request. Rate, Pitch and Volume follow the
// usual speech-engine conventions where 1.0 is neutral.
type Utterance struct {
	Text   string
	Lang   string
	Rate   float64
	Pitch  float64
	Volume float64
	Voice  *Voice
}

// Transcript is one recognition result. Final is false for interim results
// emitted by streaming recognizers.
type Transcript struct {
	Text     string
	Final    bool
	Duration time.Duration
}

type RecognizeOptions struct {
	Language    string
	Continuous  bool
	MaxDuration time.Duration
}

// Recognizer captures learner speech. RecognizeOnce blocks until a single
// utterance is captured or the context ends. RecognizeStream emits transcripts
// until the context ends or the recognizer decides the speaker is done; the
// channel is closed when recognition stops.
type Recognizer interface {
	RecognizeOnce(ctx context.Context, opts RecognizeOptions) (Transcript, error)
	RecognizeStream(ctx context.Context, opts RecognizeOptions) (<-chan Transcript, error)
}

// Synthesizer plays utterances to the learner. Speak replaces any in-flight
// utterance, so callers never hear two overlapping playbacks.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
	Cancel()
	Voices() []Voice
}
