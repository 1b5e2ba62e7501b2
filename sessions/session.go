package sessions

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Shared sentinel errors for the practice sessions.
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrEmptyAnswer     = errors.New("answer is empty")
	ErrNoSentence      = errors.New("no sentence loaded")
	ErrNotStarted      = errors.New("session not started")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered yet")
	ErrNoQuestions     = errors.New("no questions available")
	ErrRecordingActive = errors.New("recording already in progress")
	ErrNoWord          = errors.New("no word loaded")
	ErrNoQuestion      = errors.New("no question loaded")
	ErrNoConversation  = errors.New("no conversation in progress")
	ErrNotFinished     = errors.New("round not finished")
	ErrStale           = errors.New("response belongs to a superseded request")
)

// generationGuard tags each new exercise with a fresh token so that a
// response arriving after the learner has already moved on is discarded
// instead of clobbering the newer exercise.
type generationGuard struct {
	mu      sync.Mutex
	current uuid.UUID
}

// next invalidates all outstanding tokens and returns a fresh one.
func (g *generationGuard) next() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = uuid.New()
	return g.current
}

// still reports whether token is still the live generation.
func (g *generationGuard) still(token uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current == token
}

// RecordingGuard is an advisory lock around the single microphone. TryAcquire
// fails instead of blocking so the caller can tell the learner a recording is
// already running.
type RecordingGuard struct {
	mu     sync.Mutex
	active bool
}

func (g *RecordingGuard) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return false
	}
	g.active = true
	return true
}

func (g *RecordingGuard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
}
