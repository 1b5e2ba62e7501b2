package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lingo-tutor/sessions"
	"lingo-tutor/utils"
)

func (a *App) runListening(ctx context.Context) error {
	color.New(color.FgCyan, color.Bold).Println("\n🎧 Listening Practice")

	difficulty := a.prompt("Difficulty (easy/medium/hard) [medium]:")
	switch difficulty {
	case "easy", "medium", "hard":
	default:
		difficulty = "medium"
	}
	topic := a.prompt("Topic (blank for any):")
	if topic == "" {
		topic = "all"
	}

	listening := a.listeningSession()

	for {
		if err := listening.Start(ctx, difficulty, topic); err != nil {
			return err
		}
		if err := listening.Play(ctx, false); err != nil {
			utils.PrintError("Playback failed: " + err.Error())
		}

		answered := false
		for !answered {
			utils.PrintInfo("Commands: replay, slow, hint, giveup, or type what you heard")
			input := a.prompt("\nYour answer:")
			switch input {
			case "":
				continue
			case "exit", "quit":
				printListeningStats(listening.Stats())
				return nil
			case "replay":
				listening.Play(ctx, false)
			case "slow":
				listening.Play(ctx, true)
			case "hint":
				hint, err := listening.Hint()
				if err != nil {
					utils.PrintError(err.Error())
					continue
				}
				utils.PrintInfo("Hint: " + hint)
			case "giveup":
				sentence, err := listening.Sentence()
				if err != nil {
					utils.PrintError(err.Error())
					continue
				}
				utils.PrintInfo("The sentence was: " + sentence)
				answered = true
			default:
				resp, err := listening.Submit(ctx, input)
				if err != nil {
					utils.PrintError("Could not check your answer: " + err.Error())
					continue
				}
				if resp.IsCorrect {
					utils.PrintSuccess(fmt.Sprintf("Correct! (%.0f%% similar)", resp.Similarity))
				} else {
					utils.PrintError(fmt.Sprintf("Not quite (%.0f%% similar)", resp.Similarity))
					utils.PrintInfo("It was: " + resp.OriginalSentence)
				}
				if resp.Feedback != "" {
					fmt.Println(sessions.FormatText(resp.Feedback))
				}
				if resp.AIAnalysis != "" {
					color.New(color.FgHiBlack).Println(sessions.FormatText(resp.AIAnalysis))
				}
				answered = true
			}
		}

		if strings.EqualFold(a.prompt("\nAnother sentence? (Y/n):"), "n") {
			printListeningStats(listening.Stats())
			return nil
		}
	}
}

func printListeningStats(stats sessions.ListeningStats) {
	if stats.Attempts == 0 {
		return
	}
	color.New(color.FgYellow, color.Bold).Println("\n📊 This session")
	fmt.Printf("  Attempts: %d  Correct: %d  Accuracy: %.0f%%\n", stats.Attempts, stats.Correct, stats.Accuracy())
}
