package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lingo-tutor/api"
	"lingo-tutor/sessions"
	"lingo-tutor/speech"
	"lingo-tutor/ui"
	"lingo-tutor/utils"
)

var rootCmd = &cobra.Command{
	Use:   "lingo-tutor",
	Short: "Terminal English learning assistant",
	Long:  "Chat, quizzes, games, listening and speaking practice against the lingo backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return app.Run(signalContext())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for _, mode := range sessions.AllModes() {
		mode := mode
		rootCmd.AddCommand(&cobra.Command{
			Use:   string(mode),
			Short: mode.Description(),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := buildApp()
				if err != nil {
					return err
				}
				return app.RunMode(signalContext(), mode)
			},
		})
	}
}

func signalContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}

func buildApp() (*ui.App, error) {
	cfg, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	client := api.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second, log)

	// The app and the recognizer must share one buffered reader; two
	// buffers over the same stdin would steal each other's input.
	stdin := bufio.NewReader(os.Stdin)

	return &ui.App{
		API:   client,
		Cfg:   cfg,
		In:    stdin,
		Log:   log,
		Rec:   speech.NewTerminalRecognizer(stdin),
		Synth: speech.NewTerminalSynthesizer(os.Stdout),
	}, nil
}
