package sessions

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatTextPlain(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"literal newline", `line one\nline two`, "line one\nline two"},
		{"bold", "this is **important** stuff", "this is important stuff"},
		{"italic", "say *hello* now", "say hello now"},
		{"bold not eaten by italic", "**very bold**", "very bold"},
		{"code", "use `go run` here", "use go run here"},
		{"correction tag", "[Sửa lỗi: use past tense]", "💡 use past tense"},
		{"vocab tag", "nice! [Từ vựng: station - nhà ga]", "nice! 📚 station - nhà ga"},
		{"hint tag", "[Gợi ý: think about yesterday]", "💭 think about yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatText(tt.in); got != tt.want {
				t.Errorf("FormatText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTextMixed(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	in := `Good try!\n[Sửa lỗi: "goed" should be **went**]\n[Từ vựng: cinema - rạp chiếu phim]`
	got := FormatText(in)
	for _, want := range []string{"💡", "📚", "went", "rạp chiếu phim"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatText output missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "**") || strings.Contains(got, `\n`) {
		t.Errorf("markup left unrendered: %q", got)
	}
}
