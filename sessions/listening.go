package sessions

import (
	"context"
	"fmt"
	"strings"

	"lingo-tutor/api"
	"lingo-tutor/speech"
)

// ListeningBackend is the slice of the API the listening exercise needs.
type ListeningBackend interface {
	ListeningSentence(ctx context.Context, difficulty, topic string) (string, error)
	CheckListeningAnswer(ctx context.Context, req api.CheckAnswerRequest) (*api.CheckAnswerResponse, error)
}

// Playback speed factors per difficulty. Slow replay always plays at 0.6 of
// the base speed regardless of difficulty.
const (
	rateEasy   = 0.85
	rateMedium = 1.0
	rateHard   = 1.1
	rateSlow   = 0.6
)

// ListeningStats accumulate across exercises for the life of the process.
type ListeningStats struct {
	Attempts int
	Correct  int
}

func (s ListeningStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts) * 100
}

// Listening runs dictation practice: the learner hears a sentence and types
// it back. Each new sentence gets a fresh generation token so a slow fetch
// can never overwrite a newer exercise.
type Listening struct {
	backend ListeningBackend
	synth   speech.Synthesizer
	gen     generationGuard

	baseSpeed  float64
	voice      *speech.Voice
	lang       string
	difficulty string
	topic      string

	sentence  string
	playCount int
	stats     ListeningStats
}

func NewListening(backend ListeningBackend, synth speech.Synthesizer, baseSpeed float64, voice *speech.Voice, lang string) *Listening {
	if baseSpeed <= 0 {
		baseSpeed = 1.0
	}
	return &Listening{
		backend:   backend,
		synth:     synth,
		baseSpeed: baseSpeed,
		voice:     voice,
		lang:      lang,
	}
}

func (l *Listening) Stats() ListeningStats { return l.stats }

func (l *Listening) PlayCount() int { return l.playCount }

func (l *Listening) HasSentence() bool { return l.sentence != "" }

// Sentence reveals the current sentence, for the give-up path.
func (l *Listening) Sentence() (string, error) {
	if l.sentence == "" {
		return "", ErrNoSentence
	}
	return l.sentence, nil
}

// Rate converts a difficulty into the playback speed. The slow replay rate
// ignores difficulty entirely.
func (l *Listening) Rate(slow bool) float64 {
	if slow {
		return l.baseSpeed * rateSlow
	}
	switch l.difficulty {
	case "easy":
		return l.baseSpeed * rateEasy
	case "hard":
		return l.baseSpeed * rateHard
	default:
		return l.baseSpeed * rateMedium
	}
}

// Start fetches a new sentence and resets the play counter. A stale fetch
// result, superseded by a newer Start, is dropped.
func (l *Listening) Start(ctx context.Context, difficulty, topic string) error {
	token := l.gen.next()

	sentence, err := l.backend.ListeningSentence(ctx, difficulty, topic)
	if err != nil {
		return err
	}
	if !l.gen.still(token) {
		return ErrStale
	}

	l.difficulty = difficulty
	l.topic = topic
	l.sentence = sentence
	l.playCount = 0
	return nil
}

// Play speaks the sentence and counts the replay. Slow replays also count.
func (l *Listening) Play(ctx context.Context, slow bool) error {
	if l.sentence == "" {
		return ErrNoSentence
	}
	l.playCount++
	return l.synth.Speak(ctx, speech.Utterance{
		Text:   l.sentence,
		Lang:   l.lang,
		Rate:   l.Rate(slow),
		Pitch:  1,
		Volume: 1,
		Voice:  l.voice,
	})
}

// Hint gives away the word count and the first letter without revealing the
// sentence.
func (l *Listening) Hint() (string, error) {
	if l.sentence == "" {
		return "", ErrNoSentence
	}
	words := strings.Fields(l.sentence)
	first := ""
	if len(words) > 0 {
		first = string([]rune(words[0])[0])
	}
	return fmt.Sprintf("%s... (%d words)", first, len(words)), nil
}

// Submit grades the learner's attempt. An empty answer never reaches the
// backend. The attempt is counted whatever the verdict.
func (l *Listening) Submit(ctx context.Context, answer string) (*api.CheckAnswerResponse, error) {
	if l.sentence == "" {
		return nil, ErrNoSentence
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	resp, err := l.backend.CheckListeningAnswer(ctx, api.CheckAnswerRequest{
		Sentence:   l.sentence,
		Answer:     answer,
		Difficulty: l.difficulty,
		Topic:      l.topic,
		PlayCount:  l.playCount,
	})
	if err != nil {
		return nil, err
	}

	l.stats.Attempts++
	if resp.IsCorrect {
		l.stats.Correct++
	}
	return resp, nil
}
