package speech

import "strings"

// Preference keys understood by SelectVoice.
const (
	VoiceUSFemale = "us-female"
	VoiceUSMale   = "us-male"
	VoiceUKFemale = "uk-female"
	VoiceUKMale   = "uk-male"
)

// SelectVoice picks the installed voice that best matches a preference key.
// Matching is done on whole lowercase tokens of the voice name so that
// "female" never satisfies a request for a male voice. When nothing matches
// the preference, the first English voice wins; failing that, nil.
func SelectVoice(voices []Voice, pref string) *Voice {
	var langPrefix string
	var wantTokens []string
	switch pref {
	case VoiceUSFemale:
		langPrefix, wantTokens = "en-US", []string{"female", "woman", "zira"}
	case VoiceUSMale:
		langPrefix, wantTokens = "en-US", []string{"male", "man", "david"}
	case VoiceUKFemale:
		langPrefix, wantTokens = "en-GB", []string{"female", "woman", "hazel"}
	case VoiceUKMale:
		langPrefix, wantTokens = "en-GB", []string{"male", "man", "george"}
	}

	if langPrefix != "" {
		for i := range voices {
			v := &voices[i]
			if !strings.HasPrefix(v.Lang, langPrefix) {
				continue
			}
			if hasAnyToken(v.Name, wantTokens) {
				return v
			}
			// Google's US voice is female but carries no gender token.
			if pref == VoiceUSFemale && strings.Contains(v.Name, "Google US English") && !hasAnyToken(v.Name, []string{"male", "man"}) {
				return v
			}
			if pref == VoiceUKMale && strings.Contains(v.Name, "Google UK English Male") {
				return v
			}
			if pref == VoiceUKFemale && strings.Contains(v.Name, "Google UK English Female") {
				return v
			}
		}
	}

	for i := range voices {
		if strings.HasPrefix(voices[i].Lang, "en") {
			return &voices[i]
		}
	}
	return nil
}

func hasAnyToken(name string, tokens []string) bool {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '(' || r == ')'
	})
	for _, f := range fields {
		for _, t := range tokens {
			if f == t {
				return true
			}
		}
	}
	return false
}
