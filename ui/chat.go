package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lingo-tutor/sessions"
	"lingo-tutor/utils"
)

func (a *App) runChat(ctx context.Context, mode sessions.Mode) error {
	session := sessions.NewChatSession(a.API, a.Cfg.Learner.Level)
	session.SetMode(mode)

	color.New(color.FgCyan, color.Bold).Printf("\n💬 %s\n", mode.Title())
	if mode == sessions.ModeWriting {
		utils.PrintInfo("Write in English; every message gets grammar feedback.")
	}
	utils.PrintInfo("Type /progress for your stats, /tips for grammar tips, /exit to leave.")

	for {
		userInput := a.prompt("\nYou:")
		switch {
		case userInput == "/exit" || userInput == "/quit":
			return nil
		case userInput == "/progress":
			a.showProgress(ctx)
			continue
		case userInput == "/tips":
			a.showGrammarTips(ctx)
			continue
		case strings.HasPrefix(userInput, "/practice"):
			a.showPracticeSentence(ctx, strings.TrimSpace(strings.TrimPrefix(userInput, "/practice")))
			continue
		}

		turn, err := session.SendMessage(ctx, userInput)
		if err == sessions.ErrEmptyMessage {
			continue
		}
		if err != nil {
			return err
		}

		if turn.IsError {
			utils.PrintError(turn.Text)
			continue
		}
		color.New(color.FgGreen, color.Bold).Print("Bot: ")
		fmt.Println(sessions.FormatText(turn.Text))
	}
}

func (a *App) showProgress(ctx context.Context) {
	progress, err := a.API.Progress(ctx)
	if err != nil {
		utils.PrintError("Could not load progress: " + err.Error())
		return
	}
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Println("\n📊 Your Progress")
	fmt.Printf("  Conversations:       %d\n", progress.TotalConversations)
	fmt.Printf("  Grammar corrections: %d\n", progress.GrammarCorrections)
	if progress.VocabularyCount > 0 {
		fmt.Printf("  Words learned:       %d\n", progress.VocabularyCount)
	} else {
		fmt.Printf("  Words learned:       %d\n", len(progress.VocabularyLearned))
	}
	if progress.Level != "" {
		fmt.Printf("  Level:               %s\n", progress.Level)
	}
	if len(progress.VocabularyLearned) > 0 {
		recent := progress.VocabularyLearned
		if len(recent) > 5 {
			recent = recent[:5]
		}
		fmt.Printf("  Recent words:        %s\n", strings.Join(recent, ", "))
	}
}

func (a *App) showGrammarTips(ctx context.Context) {
	tips, err := a.API.GrammarTips(ctx, a.Cfg.Learner.Level)
	if err != nil {
		utils.PrintError("Could not load tips: " + err.Error())
		return
	}
	color.New(color.FgYellow, color.Bold).Printf("\n📖 Grammar tips for %s\n", tips.Level)
	for i, tip := range tips.Tips {
		fmt.Printf("  %d. %s\n", i+1, sessions.FormatText(tip))
	}
}

func (a *App) showPracticeSentence(ctx context.Context, topic string) {
	if topic == "" {
		topic = "general"
	}
	sentence, err := a.API.PracticeSentence(ctx, a.Cfg.Learner.Level, topic)
	if err != nil {
		utils.PrintError("Could not load a practice sentence: " + err.Error())
		return
	}
	color.New(color.FgCyan).Println("\n✏️  Try translating or rephrasing this:")
	fmt.Println("  " + sentence)
}
