package ui

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"lingo-tutor/sessions"
	"lingo-tutor/speech"
	"lingo-tutor/utils"
)

func testApp() *App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &App{
		Cfg: &utils.Config{
			Speech: utils.SpeechConfig{BaseSpeed: 1.0, Voice: "us-female", Language: "en-US"},
		},
		In:    bufio.NewReader(strings.NewReader("")),
		Log:   log,
		Rec:   speech.NewTerminalRecognizer(strings.NewReader("")),
		Synth: speech.NewTerminalSynthesizer(io.Discard),
	}
}

func TestListeningSessionReusedAcrossModeEntries(t *testing.T) {
	a := testApp()
	first := a.listeningSession()
	second := a.listeningSession()
	if first != second {
		t.Fatal("listening session rebuilt on re-entry; dictation stats would reset")
	}
}

func TestRunModeUnknownIsNoOp(t *testing.T) {
	a := testApp()
	if err := a.RunMode(context.Background(), sessions.Mode("bogus")); err != nil {
		t.Fatalf("unknown mode returned error %v, want nil", err)
	}
}
