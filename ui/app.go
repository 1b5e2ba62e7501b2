package ui

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"lingo-tutor/api"
	"lingo-tutor/sessions"
	"lingo-tutor/speech"
	"lingo-tutor/utils"
)

// App wires the backend client, speech capabilities and terminal input into
// the interactive practice modes.
type App struct {
	API   *api.Client
	Cfg   *utils.Config
	In    *bufio.Reader
	Log   *logrus.Logger
	Rec   speech.Recognizer
	Synth speech.Synthesizer

	guard     sessions.RecordingGuard
	voice     *speech.Voice
	listening *sessions.Listening
}

// listeningSession is created once and reused, so dictation stats keep
// accumulating when the learner leaves and re-enters listening mode.
func (a *App) listeningSession() *sessions.Listening {
	if a.listening == nil {
		a.listening = sessions.NewListening(a.API, a.Synth, a.Cfg.Speech.BaseSpeed, a.Voice(), a.Cfg.Speech.Language)
	}
	return a.listening
}

func (a *App) readLine() string {
	line, _ := a.In.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *App) prompt(label string) string {
	color.New(color.FgHiBlack).Printf("%s ", label)
	return a.readLine()
}

func (a *App) promptInt(label string, def int) int {
	raw := a.prompt(fmt.Sprintf("%s [%d]:", label, def))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		utils.PrintWarning(fmt.Sprintf("Not a valid number, using %d", def))
		return def
	}
	return n
}

func speechUtterance(text, lang string, rate float64, voice *speech.Voice) speech.Utterance {
	return speech.Utterance{Text: text, Lang: lang, Rate: rate, Pitch: 1, Volume: 1, Voice: voice}
}

// Voice resolves the configured voice preference once, lazily.
func (a *App) Voice() *speech.Voice {
	if a.voice == nil {
		a.voice = speech.SelectVoice(a.Synth.Voices(), a.Cfg.Speech.Voice)
	}
	return a.voice
}

func printBanner() {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("╔══════════════════════════════════════╗")
	cyan.Println("║    🎓 English Learning Assistant     ║")
	cyan.Println("╚══════════════════════════════════════╝")
}

// Run shows the mode menu and dispatches until the learner quits.
func (a *App) Run(ctx context.Context) error {
	printBanner()

	for {
		fmt.Println()
		color.New(color.FgYellow, color.Bold).Println("Choose a mode:")
		modes := sessions.AllModes()
		for i, m := range modes {
			fmt.Printf("  %s %s - %s\n",
				color.New(color.FgCyan).Sprintf("%d.", i+1),
				color.New(color.Bold).Sprint(m.Title()),
				m.Description())
		}
		fmt.Printf("  %s Quit\n", color.New(color.FgCyan).Sprint("0."))

		choice := a.prompt("Select:")
		if choice == "0" || strings.EqualFold(choice, "q") || strings.EqualFold(choice, "quit") {
			color.New(color.FgGreen).Println("Goodbye! Keep practicing! 👋")
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(modes) {
			utils.PrintWarning("Please pick a number from the menu")
			continue
		}

		if err := a.RunMode(ctx, modes[n-1]); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			utils.PrintError(err.Error())
		}
	}
}

// RunMode runs a single practice mode to completion.
func (a *App) RunMode(ctx context.Context, mode sessions.Mode) error {
	a.Log.WithField("mode", mode).Debug("entering mode")
	switch mode {
	case sessions.ModeChat, sessions.ModeWriting:
		return a.runChat(ctx, mode)
	case sessions.ModeHistory:
		return a.runHistory(ctx)
	case sessions.ModeVocabulary:
		return a.runVocabulary(ctx)
	case sessions.ModeListening:
		return a.runListening(ctx)
	case sessions.ModeQuiz:
		return a.runQuiz(ctx)
	case sessions.ModeGame:
		return a.runGame(ctx)
	case sessions.ModeSpeaking:
		return a.runSpeaking(ctx)
	default:
		a.Log.WithField("mode", mode).Warn("unknown mode ignored")
		return nil
	}
}
