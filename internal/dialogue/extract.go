package dialogue

import (
	"regexp"
	"strings"
	"unicode"
)

// fillerPrefixes are stripped before taking the first token as a name.
// Only the first matching prefix is removed.
var fillerPrefixes = []string{"my name is", "i'm", "i am", "call me", "it's"}

// emailPattern is deliberately RFC-light: local@domain with a 2+ letter TLD.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// platforms is the fixed creator-platform vocabulary, tested in order.
var platforms = []string{"youtube", "tiktok", "instagram", "linkedin", "twitter", "facebook", "twitch"}

// extractName pulls a name from free text: strip one leading filler phrase,
// take the first remaining whitespace-delimited token, require length >= 2,
// title-case it. Returns ok=false when nothing qualifies.
func extractName(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			trimmed = strings.TrimSpace(trimmed[len(prefix):])
			break
		}
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 || len(fields[0]) < 2 {
		return "", false
	}
	return titleCase(fields[0]), true
}

// extractEmail returns the first syntactically valid email in text.
func extractEmail(text string) (string, bool) {
	match := emailPattern.FindString(text)
	return match, match != ""
}

// extractPlatform matches text against the platform vocabulary by
// case-insensitive substring membership and returns the canonical
// title-cased form.
func extractPlatform(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range platforms {
		if strings.Contains(lower, p) {
			return titleCase(p), true
		}
	}
	return "", false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
