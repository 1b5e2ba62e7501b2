package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"lingo-tutor/sessions"
	"lingo-tutor/utils"
)

func (a *App) runGame(ctx context.Context) error {
	pairs := a.promptInt("How many pairs?", 6)
	topic := a.prompt("Topic (blank for all):")
	if topic == "" {
		topic = "all"
	}

	game := sessions.NewGameSession(a.API)
	if err := game.Start(ctx, pairs, topic); err != nil {
		if err == sessions.ErrNoQuestions {
			utils.PrintInfo("Not enough vocabulary for a game yet. Add some words first!")
			return nil
		}
		return err
	}

	color.New(color.FgCyan, color.Bold).Printf("\n🎴 Matching Game — %d pairs\n", game.TotalPairs())
	utils.PrintInfo("Match each word with its meaning. +10 per match, -2 per miss.")

	for game.Active() {
		printBoard(game)
		fmt.Printf("\n%s  ", color.New(color.FgHiBlack).Sprintf("Score: %d  Matches: %d/%d", game.Score(), game.Matches(), game.TotalPairs()))

		input := a.prompt("Pick a card (or 'quit'):")
		if input == "quit" || input == "exit" {
			// An abandoned round is never saved or ranked.
			game.Abort()
			utils.PrintInfo(fmt.Sprintf("Round abandoned at %d points after %d matches. Nothing was saved.",
				game.Score(), game.Matches()))
			return nil
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			utils.PrintWarning("Enter a card number")
			continue
		}

		res, err := game.Select(n - 1)
		if err != nil {
			return err
		}
		switch res.Outcome {
		case sessions.SelectionIgnored:
			utils.PrintWarning("That card is not available")
		case sessions.SelectionPending:
			cards := game.Cards()
			utils.PrintInfo("Selected: " + cards[res.First].Text)
		case sessions.SelectionMatched:
			utils.PrintSuccess("Match! +10")
		case sessions.SelectionMismatched:
			cards := game.Cards()
			utils.PrintError(fmt.Sprintf("No match: %q / %q  (-2)", cards[res.First].Text, cards[res.Second].Text))
		}
		if res.Done {
			result, err := game.Finish(ctx)
			if err != nil {
				return err
			}
			printGameResult(result)
			return nil
		}
	}
	return nil
}

func printBoard(game *sessions.GameSession) {
	fmt.Println()
	for i, card := range game.Cards() {
		label := card.Text
		switch {
		case game.IsMatched(i):
			label = color.New(color.FgGreen).Sprintf("✓ %s", label)
		case game.IsSelected(i):
			label = color.New(color.FgYellow).Sprintf("▶ %s", label)
		}
		marker := "W"
		if card.Type == "meaning" {
			marker = "M"
		}
		fmt.Printf("  %2d. [%s] %s\n", i+1, marker, label)
	}
}

func printGameResult(r *sessions.GameResult) {
	color.New(color.FgCyan, color.Bold).Println("\n🏁 Game over!")
	fmt.Printf("  Score: %d  Matches: %d/%d  Attempts: %d  Time: %ds\n",
		r.Score, r.Matches, r.TotalPairs, r.Attempts, r.TimeTaken)
	if r.SaveErr != nil {
		utils.PrintWarning("Could not save your score: " + r.SaveErr.Error())
	}
	if len(r.Leaderboard) > 0 {
		color.New(color.FgYellow, color.Bold).Println("\n🏆 Leaderboard")
		for i, entry := range r.Leaderboard {
			fmt.Printf("  %2d. %4d pts in %3ds  %s\n", i+1, entry.Score, entry.TimeTaken, entry.CreatedAt)
		}
	}
}
