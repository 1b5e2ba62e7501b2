package sessions

import (
	"context"
	"time"

	"lingo-tutor/api"
)

// GameBackend is the slice of the API the matching game needs.
type GameBackend interface {
	StartGame(ctx context.Context, count int, topic string) (*api.GameStartResponse, error)
	SaveGameScore(ctx context.Context, req api.SaveScoreRequest) error
	Leaderboard(ctx context.Context, gameType string) ([]api.LeaderboardEntry, error)
}

// Scoring constants for the matching game.
const (
	matchPoints    = 10
	mismatchPoints = 2
	gameType       = "matching"
)

type SelectionOutcome int

const (
	// SelectionIgnored means the pick changed nothing: card already
	// matched, already selected, or out of range.
	SelectionIgnored SelectionOutcome = iota
	// SelectionPending means a first card is now face up.
	SelectionPending
	// SelectionMatched means the pair matched.
	SelectionMatched
	// SelectionMismatched means the pair did not match.
	SelectionMismatched
)

// SelectionResult reports what a card pick did. First and Second are card
// indexes; Second is -1 while a pair is incomplete. Done is set on the match
// that clears the board.
type SelectionResult struct {
	Outcome SelectionOutcome
	First   int
	Second  int
	Done    bool
}

// GameSession runs one round of the word-meaning matching game. Two cards
// match when they share a match_id but differ in type, so picking a word's
// own card twice never counts.
type GameSession struct {
	backend GameBackend
	now     func() time.Time

	cards    []api.GameCard
	matched  []bool
	selected []int
	score    int
	matches  int
	attempts int
	started  time.Time
	active   bool
}

func NewGameSession(backend GameBackend) *GameSession {
	return &GameSession{backend: backend, now: time.Now}
}

func (g *GameSession) Active() bool { return g.active }

func (g *GameSession) Score() int { return g.score }

func (g *GameSession) Matches() int { return g.matches }

func (g *GameSession) Attempts() int { return g.attempts }

func (g *GameSession) TotalPairs() int { return len(g.cards) / 2 }

// Completed reports whether every pair on the board has been matched.
func (g *GameSession) Completed() bool {
	return len(g.cards) > 0 && g.matches == g.TotalPairs()
}

func (g *GameSession) Cards() []api.GameCard {
	cards := make([]api.GameCard, len(g.cards))
	copy(cards, g.cards)
	return cards
}

func (g *GameSession) IsMatched(i int) bool {
	return i >= 0 && i < len(g.matched) && g.matched[i]
}

func (g *GameSession) IsSelected(i int) bool {
	for _, s := range g.selected {
		if s == i {
			return true
		}
	}
	return false
}

// Start fetches a fresh shuffled board. pairCount pairs means 2*pairCount
// cards.
func (g *GameSession) Start(ctx context.Context, pairCount int, topic string) error {
	resp, err := g.backend.StartGame(ctx, pairCount, topic)
	if err != nil {
		return err
	}
	if len(resp.Cards) == 0 {
		return ErrNoQuestions
	}

	g.cards = resp.Cards
	g.matched = make([]bool, len(resp.Cards))
	g.selected = g.selected[:0]
	g.score = 0
	g.matches = 0
	g.attempts = 0
	g.started = g.now()
	g.active = true
	return nil
}

// Select flips one card. The second flip of a pair resolves it immediately:
// +10 on a match, -2 on a mismatch with the score floored at zero.
func (g *GameSession) Select(i int) (SelectionResult, error) {
	if !g.active {
		return SelectionResult{}, ErrNotStarted
	}
	if i < 0 || i >= len(g.cards) || g.matched[i] || g.IsSelected(i) || len(g.selected) >= 2 {
		return SelectionResult{Outcome: SelectionIgnored, First: i, Second: -1}, nil
	}

	g.selected = append(g.selected, i)
	if len(g.selected) < 2 {
		return SelectionResult{Outcome: SelectionPending, First: i, Second: -1}, nil
	}

	first, second := g.selected[0], g.selected[1]
	g.selected = g.selected[:0]
	g.attempts++

	a, b := g.cards[first], g.cards[second]
	if a.MatchID == b.MatchID && a.Type != b.Type {
		g.matched[first] = true
		g.matched[second] = true
		g.matches++
		g.score += matchPoints
		done := g.matches == g.TotalPairs()
		return SelectionResult{Outcome: SelectionMatched, First: first, Second: second, Done: done}, nil
	}

	g.score -= mismatchPoints
	if g.score < 0 {
		g.score = 0
	}
	return SelectionResult{Outcome: SelectionMismatched, First: first, Second: second}, nil
}

// GameResult is what Finish returns for the results screen.
type GameResult struct {
	Score       int
	Matches     int
	TotalPairs  int
	Attempts    int
	TimeTaken   int
	SaveErr     error
	Leaderboard []api.LeaderboardEntry
}

// Abort drops an unfinished round. Nothing is saved; an abandoned game must
// never post to the shared leaderboard.
func (g *GameSession) Abort() {
	g.active = false
	g.selected = g.selected[:0]
}

// Finish closes a completed round, saves the score, and fetches the
// leaderboard. A failed save does not lose the result; it is reported
// alongside. Finishing a round with unmatched pairs is refused.
func (g *GameSession) Finish(ctx context.Context) (*GameResult, error) {
	if !g.active {
		return nil, ErrNotStarted
	}
	if !g.Completed() {
		return nil, ErrNotFinished
	}
	g.active = false

	result := &GameResult{
		Score:      g.score,
		Matches:    g.matches,
		TotalPairs: g.TotalPairs(),
		Attempts:   g.attempts,
		TimeTaken:  int(g.now().Sub(g.started).Seconds()),
	}

	result.SaveErr = g.backend.SaveGameScore(ctx, api.SaveScoreRequest{
		GameType:       gameType,
		Score:          g.score,
		CorrectAnswers: g.matches,
		TotalQuestions: g.TotalPairs(),
		TimeTaken:      result.TimeTaken,
	})

	scores, err := g.backend.Leaderboard(ctx, gameType)
	if err == nil {
		result.Leaderboard = scores
	}
	return result, nil
}
