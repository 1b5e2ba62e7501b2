package sessions

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Assistant replies carry a light markup dialect: **bold**, *italic*,
// `code`, and bracketed teaching notes the backend emits in Vietnamese.
// FormatText renders it for the terminal. Bold must be handled before italic
// so that ** is not half-consumed by the single-star rule.
var (
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	codeRe       = regexp.MustCompile("`(.+?)`")
	correctionRe = regexp.MustCompile(`\[Sửa lỗi:\s*(.+?)\]`)
	vocabRe      = regexp.MustCompile(`\[Từ vựng:\s*(.+?)\]`)
	hintRe       = regexp.MustCompile(`\[Gợi ý:\s*(.+?)\]`)
)

func FormatText(text string) string {
	out := strings.ReplaceAll(text, "\\n", "\n")

	out = boldRe.ReplaceAllStringFunc(out, func(m string) string {
		inner := boldRe.FindStringSubmatch(m)[1]
		return color.New(color.Bold).Sprint(inner)
	})
	out = italicRe.ReplaceAllStringFunc(out, func(m string) string {
		inner := italicRe.FindStringSubmatch(m)[1]
		return color.New(color.Italic).Sprint(inner)
	})
	out = codeRe.ReplaceAllStringFunc(out, func(m string) string {
		inner := codeRe.FindStringSubmatch(m)[1]
		return color.New(color.FgHiWhite, color.BgHiBlack).Sprint(inner)
	})

	out = correctionRe.ReplaceAllStringFunc(out, func(m string) string {
		inner := correctionRe.FindStringSubmatch(m)[1]
		return color.New(color.FgYellow).Sprintf("💡 %s", inner)
	})
	out = vocabRe.ReplaceAllStringFunc(out, func(m string) string {
		inner := vocabRe.FindStringSubmatch(m)[1]
		return color.New(color.FgGreen).Sprintf("📚 %s", inner)
	})
	out = hintRe.ReplaceAllStringFunc(out, func(m string) string {
		inner := hintRe.FindStringSubmatch(m)[1]
		return color.New(color.FgBlue).Sprintf("💭 %s", inner)
	})

	return out
}
