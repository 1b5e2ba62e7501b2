package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lingo-tutor/api"
	"lingo-tutor/sessions"
	"lingo-tutor/speech"
	"lingo-tutor/utils"
)

func (a *App) newSpeaking() *sessions.Speaking {
	return sessions.NewSpeaking(a.API, a.Rec, a.Synth, &a.guard, loadSampleWords, a.Voice(), a.Cfg.Speech.Language)
}

func loadSampleWords() ([]api.PronunciationWord, error) {
	samples, err := utils.LoadSampleWords()
	if err != nil {
		return nil, err
	}
	words := make([]api.PronunciationWord, len(samples))
	for i, s := range samples {
		words[i] = api.PronunciationWord{Word: s.Word, Phonetic: s.Phonetic, MeaningVi: s.MeaningVi}
	}
	return words, nil
}

func (a *App) runSpeaking(ctx context.Context) error {
	speaking := a.newSpeaking()

	for {
		color.New(color.FgCyan, color.Bold).Println("\n🎤 Speaking Practice")
		fmt.Println("  1. Pronunciation - repeat single words")
		fmt.Println("  2. Topic answers - answer a question out loud")
		fmt.Println("  3. Conversation - role-play a scene")
		fmt.Println("  4. My statistics")
		fmt.Println("  0. Back")

		switch a.prompt("Select:") {
		case "0", "back", "exit":
			return nil
		case "1":
			if err := a.runPronunciation(ctx, speaking); err != nil {
				utils.PrintError(err.Error())
			}
		case "2":
			if err := a.runTopicAnswers(ctx, speaking); err != nil {
				utils.PrintError(err.Error())
			}
		case "3":
			if err := a.runConversation(ctx, speaking); err != nil {
				utils.PrintError(err.Error())
			}
		case "4":
			a.showSpeakingStats(ctx, speaking)
		default:
			utils.PrintWarning("Please pick a number from the menu")
		}
	}
}

func (a *App) runPronunciation(ctx context.Context, speaking *sessions.Speaking) error {
	for {
		word, isSample, err := speaking.NextWord(ctx)
		if err != nil {
			return err
		}

		fmt.Println()
		color.New(color.FgYellow, color.Bold).Printf("Say: %s", word.Word)
		if word.Phonetic != "" {
			color.New(color.FgHiBlack).Printf("  %s", word.Phonetic)
		}
		fmt.Println()
		if word.MeaningVi != "" {
			fmt.Println("  Meaning: " + word.MeaningVi)
		}
		if isSample {
			utils.PrintInfo("Practice word (add your own vocabulary for personalized practice)")
		}

		speaking.PlayWord(ctx)

		utils.PrintInfo("Commands: record, replay, skip, exit")
		for done := false; !done; {
			switch a.prompt("speak>") {
			case "record", "r", "":
				result, err := speaking.RecordPronunciation(ctx)
				switch err {
				case nil:
					printPronunciationResult(result)
					done = true
				case sessions.ErrRecordingActive:
					utils.PrintWarning("A recording is already running")
				case speech.ErrNoSpeech:
					utils.PrintWarning("I didn't catch anything, try again")
				default:
					utils.PrintError("Recording failed: " + err.Error())
					done = true
				}
			case "replay":
				speaking.PlayWord(ctx)
			case "skip":
				done = true
			case "exit", "quit":
				return nil
			default:
				utils.PrintWarning("Unknown command")
			}
		}

		if strings.EqualFold(a.prompt("\nNext word? (Y/n):"), "n") {
			return nil
		}
	}
}

func printPronunciationResult(r *api.CheckPronunciationResponse) {
	fmt.Printf("\n  You said: %q\n", r.Transcript)
	scoreColor := color.FgRed
	if r.Score >= 80 {
		scoreColor = color.FgGreen
	} else if r.Score >= 60 {
		scoreColor = color.FgYellow
	}
	color.New(scoreColor, color.Bold).Printf("  Score: %d/100\n", r.Score)
	color.New(color.FgYellow).Println("  " + sessions.PronunciationMessage(r.Score))
	if r.Feedback != "" {
		fmt.Println("  " + sessions.FormatText(r.Feedback))
	}
}

func (a *App) runTopicAnswers(ctx context.Context, speaking *sessions.Speaking) error {
	topic := a.prompt("Topic (e.g. travel, food, work):")
	if topic == "" {
		topic = "daily life"
	}

	for {
		question, err := speaking.NextTopicQuestion(ctx, topic)
		if err != nil {
			return err
		}
		fmt.Println()
		color.New(color.FgYellow, color.Bold).Println("Question: " + question)
		utils.PrintInfo(fmt.Sprintf("You have up to %.0f seconds. Press enter to start recording.", sessions.TopicRecordingCeiling.Seconds()))
		a.readLine()

		result, err := speaking.RecordTopicAnswer(ctx)
		switch err {
		case nil:
			printTopicResult(result)
		case sessions.ErrRecordingActive:
			utils.PrintWarning("A recording is already running")
		case speech.ErrNoSpeech:
			utils.PrintWarning("I didn't catch anything")
		default:
			utils.PrintError("Recording failed: " + err.Error())
		}

		if strings.EqualFold(a.prompt("\nAnother question? (Y/n):"), "n") {
			return nil
		}
	}
}

func printTopicResult(r *api.CheckTopicResponse) {
	color.New(color.FgCyan, color.Bold).Println("\n📋 Your answer, scored")
	fmt.Printf("  You said: %q\n", r.Transcript)
	fmt.Printf("  Overall:       %d/100\n", r.OverallScore)
	fmt.Printf("  Pronunciation: %d  Grammar: %d  Vocabulary: %d  Fluency: %d\n",
		r.PronunciationScore, r.GrammarScore, r.VocabularyScore, r.FluencyScore)
	if r.Feedback != "" {
		fmt.Println(sessions.FormatText(r.Feedback))
	}
}

func (a *App) runConversation(ctx context.Context, speaking *sessions.Speaking) error {
	role := a.prompt("Who should I play? (waiter, interviewer, shop assistant...):")
	if role == "" {
		role = "friend"
	}

	greeting, err := speaking.StartConversation(ctx, role)
	if err != nil {
		return err
	}
	color.New(color.FgGreen, color.Bold).Print("\nAI: ")
	fmt.Println(sessions.FormatText(greeting))

	utils.PrintInfo("Press enter to speak your reply; type 'end' to finish.")
	for {
		input := a.prompt("conversation>")
		if input == "end" || input == "exit" || input == "quit" {
			speaking.EndConversation()
			return nil
		}

		reply, err := speaking.RecordReply(ctx)
		switch err {
		case nil:
		case sessions.ErrRecordingActive:
			utils.PrintWarning("A recording is already running")
			continue
		case speech.ErrNoSpeech:
			utils.PrintWarning("I didn't catch anything")
			continue
		default:
			utils.PrintError("That didn't work: " + err.Error())
			continue
		}

		color.New(color.FgHiBlue).Printf("You: %s\n", reply.UserText)
		color.New(color.FgGreen, color.Bold).Print("AI: ")
		fmt.Println(sessions.FormatText(reply.Reply))
		if reply.Feedback != "" {
			color.New(color.FgHiBlack).Println(sessions.FormatText(reply.Feedback))
		}
	}
}

func (a *App) showSpeakingStats(ctx context.Context, speaking *sessions.Speaking) {
	stats, err := speaking.Statistics(ctx)
	if err != nil {
		utils.PrintError("Could not load statistics: " + err.Error())
		return
	}
	color.New(color.FgYellow, color.Bold).Println("\n📊 Speaking practice")
	if stats.Sessions == 0 {
		utils.PrintInfo("No speaking sessions recorded yet.")
		return
	}
	fmt.Printf("  Sessions: %d  Average score: %.0f/100\n", stats.Sessions, stats.AverageScore)
	limit := len(stats.Recent)
	if limit > 10 {
		limit = 10
	}
	for _, entry := range stats.Recent[:limit] {
		line := fmt.Sprintf("  %3d/100  %s", entry.OverallScore, entry.PracticeType)
		if entry.Topic != "" {
			line += " (" + entry.Topic + ")"
		}
		fmt.Println(line + "  " + entry.CreatedAt)
	}
}
