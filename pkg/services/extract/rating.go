package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	starGlyph         = "\u2b50"
	variationSelector = "\ufe0f"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Rating converts a star-glyph or numeric rating into a score. Unreadable input is 0.
func Rating(text string) int {
	if text == "" || text == Placeholder {
		return 0
	}

	clean := strings.ReplaceAll(text, variationSelector, "")
	if n := strings.Count(clean, starGlyph); n > 0 {
		return n
	}

	run := digitRun.FindString(clean)
	if run == "" {
		return 0
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0
	}
	return n
}

// Digits parses the concatenation of every decimal digit in text. No digits means 0.
func Digits(text string) int64 {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
