package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"lingo-tutor/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Not fatal; configuration can come from files or real env vars.
		color.New(color.FgHiBlack).Println("No .env file found, using environment variables")
	}

	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Printf("✗ %v\n", err)
		os.Exit(1)
	}
}
