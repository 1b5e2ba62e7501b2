package sessions

import "fmt"

// Mode is one of the assistant's practice modes.
type Mode string

const (
	ModeChat       Mode = "chat"
	ModeHistory    Mode = "history"
	ModeVocabulary Mode = "vocabulary"
	ModeWriting    Mode = "writing"
	ModeListening  Mode = "listening"
	ModeQuiz       Mode = "quiz"
	ModeGame       Mode = "game"
	ModeSpeaking   Mode = "speaking"
)

var allModes = []Mode{
	ModeChat,
	ModeHistory,
	ModeVocabulary,
	ModeWriting,
	ModeListening,
	ModeQuiz,
	ModeGame,
	ModeSpeaking,
}

func AllModes() []Mode {
	modes := make([]Mode, len(allModes))
	copy(modes, allModes)
	return modes
}

func ParseMode(s string) (Mode, error) {
	for _, m := range allModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode: %q", s)
}

func (m Mode) Title() string {
	switch m {
	case ModeChat:
		return "Free Chat"
	case ModeHistory:
		return "Chat History"
	case ModeVocabulary:
		return "My Vocabulary"
	case ModeWriting:
		return "Writing Practice"
	case ModeListening:
		return "Listening Practice"
	case ModeQuiz:
		return "Vocabulary Quiz"
	case ModeGame:
		return "Matching Game"
	case ModeSpeaking:
		return "Speaking Practice"
	default:
		return string(m)
	}
}

// Description is the one-line hint shown next to the mode in the menu.
func (m Mode) Description() string {
	switch m {
	case ModeChat:
		return "Talk freely with the assistant"
	case ModeHistory:
		return "Browse past conversations"
	case ModeVocabulary:
		return "Review and manage saved words"
	case ModeWriting:
		return "Chat with extra grammar corrections"
	case ModeListening:
		return "Listen to sentences and type them back"
	case ModeQuiz:
		return "Multiple-choice quiz over your words"
	case ModeGame:
		return "Match words with their meanings"
	case ModeSpeaking:
		return "Pronunciation, topics and conversations"
	default:
		return ""
	}
}
