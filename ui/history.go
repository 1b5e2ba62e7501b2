package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"lingo-tutor/api"
	"lingo-tutor/sessions"
	"lingo-tutor/utils"
)

func (a *App) runHistory(ctx context.Context) error {
	limit := a.promptInt("How many conversations to show?", 20)

	history, err := a.API.ChatHistory(ctx, limit)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		utils.PrintInfo("No conversations yet. Start chatting first!")
		return nil
	}

	color.New(color.FgCyan, color.Bold).Printf("\n🕘 Last %d conversations\n", len(history))
	printHistoryGrouped(history)

	if raw := a.prompt("\nReplay an exchange? (number, blank to skip):"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(history) {
			replayExchange(history[n-1])
		} else {
			utils.PrintWarning("No such exchange")
		}
	}

	if strings.EqualFold(a.prompt("Export to JSON? (y/N):"), "y") {
		filename := fmt.Sprintf("chat_history_%d.json", utils.GetCurrentTimestamp())
		utils.ExportToJSON(filename, history, "GET", "/api/chat/history")
	}
	return nil
}

// replayExchange re-renders one past exchange the way the live chat shows it.
func replayExchange(entry api.HistoryEntry) {
	fmt.Println()
	color.New(color.FgHiBlue, color.Bold).Print("You: ")
	fmt.Println(entry.UserMessage)
	color.New(color.FgGreen, color.Bold).Print("Bot: ")
	fmt.Println(sessions.FormatText(entry.BotResponse))
}

// printHistoryGrouped prints entries under day headers. CreatedAt is an ISO
// timestamp, so the date is its first ten characters.
func printHistoryGrouped(history []api.HistoryEntry) {
	lastDate := ""
	for i, entry := range history {
		date := entry.CreatedAt
		if len(date) >= 10 {
			date = date[:10]
		}
		if date != lastDate {
			color.New(color.FgYellow, color.Bold).Printf("\n── %s ──\n", date)
			lastDate = date
		}
		color.New(color.FgHiBlack).Printf("%d.\n", i+1)
		color.New(color.FgHiBlue).Print("You: ")
		fmt.Println(entry.UserMessage)
		color.New(color.FgGreen).Print("Bot: ")
		fmt.Println(sessions.FormatText(entry.BotResponse))
		fmt.Println()
	}
}
