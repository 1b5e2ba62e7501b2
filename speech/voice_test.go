package speech

import "testing"

func TestSelectVoice(t *testing.T) {
	voices := []Voice{
		{Name: "Microsoft David Desktop", Lang: "en-US"},
		{Name: "Microsoft Zira Desktop", Lang: "en-US"},
		{Name: "Microsoft Hazel Desktop", Lang: "en-GB"},
		{Name: "Google US English", Lang: "en-US"},
		{Name: "Google UK English Male", Lang: "en-GB"},
		{Name: "Google UK English Female", Lang: "en-GB"},
		{Name: "Google Deutsch", Lang: "de-DE"},
	}

	tests := []struct {
		pref string
		want string
	}{
		{VoiceUSFemale, "Microsoft Zira Desktop"},
		{VoiceUSMale, "Microsoft David Desktop"},
		{VoiceUKFemale, "Microsoft Hazel Desktop"},
		{VoiceUKMale, "Google UK English Male"},
	}
	for _, tt := range tests {
		got := SelectVoice(voices, tt.pref)
		if got == nil || got.Name != tt.want {
			t.Errorf("SelectVoice(%s) = %v, want %s", tt.pref, got, tt.want)
		}
	}
}

func TestSelectVoiceFemaleNeverSatisfiesMale(t *testing.T) {
	voices := []Voice{
		{Name: "Acme Female Voice", Lang: "en-US"},
		{Name: "Acme Deutsch", Lang: "de-DE"},
	}
	// "Female" contains "male" as a substring but must not match it.
	got := SelectVoice(voices, VoiceUSMale)
	if got == nil {
		t.Fatal("expected English fallback voice")
	}
	if got.Name != "Acme Female Voice" {
		t.Fatalf("got %q via unexpected path", got.Name)
	}
	// It is only acceptable as the generic English fallback, which is what
	// this case exercises: no en-US male voice exists.
}

func TestSelectVoiceFallbacks(t *testing.T) {
	t.Run("first english voice", func(t *testing.T) {
		voices := []Voice{
			{Name: "Google Deutsch", Lang: "de-DE"},
			{Name: "Some AU Voice", Lang: "en-AU"},
		}
		got := SelectVoice(voices, VoiceUSFemale)
		if got == nil || got.Name != "Some AU Voice" {
			t.Fatalf("got %v, want the en-AU voice", got)
		}
	})
	t.Run("no english voice", func(t *testing.T) {
		voices := []Voice{{Name: "Google Deutsch", Lang: "de-DE"}}
		if got := SelectVoice(voices, VoiceUSFemale); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})
	t.Run("no voices", func(t *testing.T) {
		if got := SelectVoice(nil, VoiceUKMale); got != nil {
			t.Fatalf("got %v, want nil", got)
		}
	})
}

func TestSelectVoiceGoogleUSHeuristic(t *testing.T) {
	voices := []Voice{
		{Name: "Google US English", Lang: "en-US"},
	}
	got := SelectVoice(voices, VoiceUSFemale)
	if got == nil || got.Name != "Google US English" {
		t.Fatalf("got %v, want Google US English", got)
	}
}
