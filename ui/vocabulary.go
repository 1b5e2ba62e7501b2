package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"lingo-tutor/api"
	"lingo-tutor/sessions"
	"lingo-tutor/translate"
	"lingo-tutor/utils"
)

func (a *App) runVocabulary(ctx context.Context) error {
	store := sessions.NewVocabStore(a.API)
	if err := store.Load(ctx); err != nil {
		return err
	}

	search, topic := "", "all"
	order := sessions.SortNewest

	for {
		entries := store.View(search, topic, order)
		color.New(color.FgCyan, color.Bold).Printf("\n📚 My Vocabulary (%d of %d words)\n", len(entries), store.Count())
		printVocabList(entries)

		fmt.Println()
		utils.PrintInfo("Commands: add, delete <n>, search <text>, topic <name>, sort <newest|oldest|az|za>, play <n>, export, back")
		input := a.prompt("vocab>")
		cmd, arg, _ := strings.Cut(input, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "back", "exit", "":
			if cmd != "" {
				return nil
			}
		case "add":
			a.addVocabWord(ctx, store)
		case "delete":
			a.deleteVocabWord(ctx, store, entries, arg)
		case "search":
			search = arg
		case "topic":
			if arg == "" {
				fmt.Println("Topics: all, " + strings.Join(store.Topics(), ", "))
			} else {
				topic = arg
			}
		case "sort":
			switch sessions.SortOrder(arg) {
			case sessions.SortNewest, sessions.SortOldest, sessions.SortAZ, sessions.SortZA:
				order = sessions.SortOrder(arg)
			default:
				utils.PrintWarning("Unknown sort order")
			}
		case "play":
			a.playVocabWord(ctx, entries, arg)
		case "export":
			filename := fmt.Sprintf("vocabulary_%d.json", utils.GetCurrentTimestamp())
			utils.ExportToJSON(filename, entries, "GET", "/api/user-vocabulary")
		default:
			utils.PrintWarning("Unknown command")
		}
	}
}

func printVocabList(entries []api.VocabEntry) {
	if len(entries) == 0 {
		utils.PrintInfo("Nothing here yet.")
		return
	}
	for i, e := range entries {
		topic := e.Topic
		if topic == "" {
			topic = "general"
		}
		fmt.Printf("  %s %s",
			color.New(color.FgHiBlack).Sprintf("%2d.", i+1),
			color.New(color.Bold).Sprint(e.Word))
		if e.Phonetic != "" {
			color.New(color.FgHiBlack).Printf(" %s", e.Phonetic)
		}
		fmt.Printf(" — %s %s\n", e.MeaningVi, color.New(color.FgMagenta).Sprintf("[%s]", topic))
		if e.Example != "" {
			color.New(color.FgHiBlack).Printf("      e.g. %s\n", e.Example)
		}
	}
}

func (a *App) addVocabWord(ctx context.Context, store *sessions.VocabStore) {
	word := a.prompt("New word:")
	if word == "" {
		utils.PrintWarning("Word cannot be empty")
		return
	}

	meaning := a.prompt("Meaning (leave blank to auto-translate):")
	if meaning == "" {
		translator := translate.NewTranslator("en", a.Cfg.Learner.NativeLanguage)
		suggestion, err := translator.Translate(word)
		if err != nil {
			utils.PrintWarning("Auto-translate failed: " + err.Error())
			return
		}
		utils.PrintInfo("Suggested meaning: " + suggestion)
		if confirmed := a.prompt("Use it? (Y/n):"); strings.EqualFold(confirmed, "n") {
			return
		}
		meaning = suggestion
	}

	resp, err := store.Add(ctx, word, meaning)
	if err != nil {
		utils.PrintError("Could not add word: " + err.Error())
		return
	}
	utils.PrintSuccess(fmt.Sprintf("Added %q under topic %q", resp.Word, resp.Topic))
	if resp.CorrectionNote != "" {
		utils.PrintInfo(resp.CorrectionNote)
	}
	a.Synth.Speak(ctx, speechUtterance(resp.Word, a.Cfg.Speech.Language, 0.8, a.Voice()))
}

func (a *App) deleteVocabWord(ctx context.Context, store *sessions.VocabStore, entries []api.VocabEntry, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(entries) {
		utils.PrintWarning("Usage: delete <list number>")
		return
	}
	entry := entries[n-1]
	if confirmed := a.prompt(fmt.Sprintf("Delete %q? (y/N):", entry.Word)); !strings.EqualFold(confirmed, "y") {
		return
	}
	if err := store.Delete(ctx, entry.ID); err != nil {
		utils.PrintError("Could not delete: " + err.Error())
		return
	}
	utils.PrintSuccess(fmt.Sprintf("Deleted %q", entry.Word))
}

func (a *App) playVocabWord(ctx context.Context, entries []api.VocabEntry, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(entries) {
		utils.PrintWarning("Usage: play <list number>")
		return
	}
	err = a.Synth.Speak(ctx, speechUtterance(entries[n-1].Word, a.Cfg.Speech.Language, 0.8, a.Voice()))
	if err != nil {
		utils.PrintError("Playback failed: " + err.Error())
	}
}
