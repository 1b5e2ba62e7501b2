package sessions

import (
	"context"
	"errors"
	"testing"

	"lingo-tutor/api"
)

type mockGameBackend struct {
	cards       []api.GameCard
	savedScore  *api.SaveScoreRequest
	leaderboard []api.LeaderboardEntry
}

func (m *mockGameBackend) StartGame(ctx context.Context, count int, topic string) (*api.GameStartResponse, error) {
	return &api.GameStartResponse{Success: true, Cards: m.cards, TotalPairs: len(m.cards) / 2}, nil
}

func (m *mockGameBackend) SaveGameScore(ctx context.Context, req api.SaveScoreRequest) error {
	m.savedScore = &req
	return nil
}

func (m *mockGameBackend) Leaderboard(ctx context.Context, gameType string) ([]api.LeaderboardEntry, error) {
	return m.leaderboard, nil
}

// makeCards lays out n pairs as word cards followed by meaning cards, so
// card i and card i+n share match_id i+1.
func makeCards(n int) []api.GameCard {
	cards := make([]api.GameCard, 0, 2*n)
	for i := 0; i < n; i++ {
		cards = append(cards, api.GameCard{Text: "word", Type: api.CardTypeWord, MatchID: int64(i + 1)})
	}
	for i := 0; i < n; i++ {
		cards = append(cards, api.GameCard{Text: "meaning", Type: api.CardTypeMeaning, MatchID: int64(i + 1)})
	}
	return cards
}

func startGame(t *testing.T, pairs int) (*GameSession, *mockGameBackend) {
	t.Helper()
	backend := &mockGameBackend{cards: makeCards(pairs)}
	g := NewGameSession(backend)
	if err := g.Start(context.Background(), pairs, "all"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return g, backend
}

func TestGameMatchScoring(t *testing.T) {
	g, _ := startGame(t, 6)

	if got := len(g.Cards()); got != 12 {
		t.Fatalf("got %d cards, want 12", got)
	}

	res, err := g.Select(0)
	if err != nil || res.Outcome != SelectionPending {
		t.Fatalf("first pick = (%+v, %v), want pending", res, err)
	}
	res, err = g.Select(6)
	if err != nil {
		t.Fatalf("second pick failed: %v", err)
	}
	if res.Outcome != SelectionMatched {
		t.Fatalf("outcome = %v, want SelectionMatched", res.Outcome)
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, want 10", g.Score())
	}
	if !g.IsMatched(0) || !g.IsMatched(6) {
		t.Error("matched cards not marked")
	}
}

func TestGameMismatchAndFloor(t *testing.T) {
	g, _ := startGame(t, 2)

	// Cards 0 and 1 are both words with different match ids.
	g.Select(0)
	res, _ := g.Select(1)
	if res.Outcome != SelectionMismatched {
		t.Fatalf("outcome = %v, want SelectionMismatched", res.Outcome)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0 (floored)", g.Score())
	}
}

func TestGameSameIDSameTypeNoMatch(t *testing.T) {
	backend := &mockGameBackend{cards: []api.GameCard{
		{Text: "a", Type: api.CardTypeWord, MatchID: 1},
		{Text: "a2", Type: api.CardTypeWord, MatchID: 1},
		{Text: "b", Type: api.CardTypeMeaning, MatchID: 1},
		{Text: "c", Type: api.CardTypeMeaning, MatchID: 2},
	}}
	g := NewGameSession(backend)
	if err := g.Start(context.Background(), 2, "all"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	g.Select(0)
	res, _ := g.Select(1)
	if res.Outcome != SelectionMismatched {
		t.Fatalf("same id, same type: outcome = %v, want SelectionMismatched", res.Outcome)
	}
}

func TestGameRepeatSelectionsIgnored(t *testing.T) {
	g, _ := startGame(t, 2)

	g.Select(0)
	res, _ := g.Select(0)
	if res.Outcome != SelectionIgnored {
		t.Fatalf("re-pick of face-up card: outcome = %v, want SelectionIgnored", res.Outcome)
	}

	g.Select(2) // resolves the pair as a match
	if !g.IsMatched(0) {
		t.Fatal("expected pair matched")
	}
	res, _ = g.Select(0)
	if res.Outcome != SelectionIgnored {
		t.Fatalf("pick of matched card: outcome = %v, want SelectionIgnored", res.Outcome)
	}
	res, _ = g.Select(99)
	if res.Outcome != SelectionIgnored {
		t.Fatalf("out-of-range pick: outcome = %v, want SelectionIgnored", res.Outcome)
	}
}

func TestGameAbortDoesNotSave(t *testing.T) {
	g, backend := startGame(t, 2)

	g.Select(0)
	g.Select(2) // one matched pair, one still open

	g.Abort()
	if g.Active() {
		t.Fatal("game still active after Abort")
	}
	if backend.savedScore != nil {
		t.Fatalf("aborted round saved a score: %+v", backend.savedScore)
	}
}

func TestGameFinishRefusedWhileUnfinished(t *testing.T) {
	g, backend := startGame(t, 2)

	g.Select(0)
	g.Select(2)

	if _, err := g.Finish(context.Background()); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("Finish err = %v, want ErrNotFinished", err)
	}
	if backend.savedScore != nil {
		t.Fatalf("unfinished round saved a score: %+v", backend.savedScore)
	}
	if !g.Active() {
		t.Fatal("refused Finish deactivated the game")
	}
}

func TestGameCompletionAndFinish(t *testing.T) {
	g, backend := startGame(t, 2)

	g.Select(0)
	g.Select(2)
	g.Select(1)
	res, _ := g.Select(3)
	if res.Outcome != SelectionMatched || !res.Done {
		t.Fatalf("last pair = %+v, want matched and done", res)
	}

	result, err := g.Finish(context.Background())
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if result.Score != 20 || result.Matches != 2 {
		t.Errorf("result = score %d matches %d, want 20/2", result.Score, result.Matches)
	}
	if backend.savedScore == nil {
		t.Fatal("score was not saved")
	}
	if backend.savedScore.GameType != "matching" {
		t.Errorf("game_type = %q, want matching", backend.savedScore.GameType)
	}
	if backend.savedScore.CorrectAnswers != 2 || backend.savedScore.TotalQuestions != 2 {
		t.Errorf("saved %d/%d, want 2/2", backend.savedScore.CorrectAnswers, backend.savedScore.TotalQuestions)
	}
	if g.Active() {
		t.Error("game still active after Finish")
	}
}
