package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"lingo-tutor/sessions"
	"lingo-tutor/utils"
)

func (a *App) runQuiz(ctx context.Context) error {
	count := a.promptInt("How many questions?", 5)
	topic := a.prompt("Topic (blank for all):")
	if topic == "" {
		topic = "all"
	}

	quiz := sessions.NewQuiz(a.API)
	if err := quiz.Start(ctx, count, topic); err != nil {
		if err == sessions.ErrNoQuestions {
			utils.PrintInfo("Not enough vocabulary for a quiz yet. Add some words first!")
			return nil
		}
		return err
	}

	color.New(color.FgCyan, color.Bold).Printf("\n❓ Vocabulary Quiz — %d questions\n", quiz.Total())

	for quiz.State() == sessions.QuizInProgress {
		question, err := quiz.Current()
		if err != nil {
			return err
		}

		fmt.Println()
		color.New(color.FgYellow, color.Bold).Printf("Question %d/%d: ", quiz.Index()+1, quiz.Total())
		fmt.Print(color.New(color.Bold).Sprint(question.Word))
		if question.Phonetic != "" {
			color.New(color.FgHiBlack).Printf(" %s", question.Phonetic)
		}
		fmt.Println()
		for i, opt := range question.Options {
			fmt.Printf("  %d. %s\n", i+1, opt.Text)
		}

		pick, err := strconv.Atoi(a.prompt("Your answer:"))
		if err != nil {
			utils.PrintWarning("Enter the option number")
			continue
		}
		correct, err := quiz.SelectOption(pick - 1)
		if err != nil {
			utils.PrintWarning(err.Error())
			continue
		}
		if correct {
			utils.PrintSuccess("Correct!")
		} else {
			utils.PrintError("Not quite.")
			for _, opt := range question.Options {
				if opt.IsCorrect {
					utils.PrintInfo("The answer was: " + opt.Text)
					break
				}
			}
		}

		result, err := quiz.Advance(ctx)
		if err != nil && result == nil {
			return err
		}
		if result != nil {
			if err != nil {
				utils.PrintWarning("Could not submit results to the server; showing local score.")
			}
			printQuizResult(*result)
		}
	}
	return nil
}

func printQuizResult(r sessions.QuizResult) {
	color.New(color.FgCyan, color.Bold).Println("\n🏁 Quiz finished!")
	fmt.Printf("  Score: %d/%d (%.0f%%)\n", r.Correct, r.Total, r.Percentage)
	color.New(color.FgYellow).Println("  " + r.ResultMessage())
}
