package translate

import (
	"fmt"
	"strings"

	gt "github.com/bas24/googletranslatefree"
)

// Translator suggests native-language meanings for new vocabulary words so
// the learner does not have to type the translation by hand.
type Translator struct {
	sourceLang string
	targetLang string
}

func NewTranslator(sourceLang, targetLang string) *Translator {
	if sourceLang == "" {
		sourceLang = "en"
	}
	if targetLang == "" {
		targetLang = "vi"
	}
	return &Translator{sourceLang: sourceLang, targetLang: targetLang}
}

func (t *Translator) Translate(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("nothing to translate")
	}
	result, err := gt.Translate(text, t.sourceLang, t.targetLang)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	return result, nil
}
