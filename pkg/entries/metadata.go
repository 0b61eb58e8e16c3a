package entries

import (
	"strings"
	"time"

	"github.com/agentstation/freewrite/pkg/constants"
)

// Preview returns the first constants.PreviewLength characters of content
// with newlines turned into spaces and the ends trimmed, plus an ellipsis
// when something was cut.
func Preview(content string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
	if trimmed == "" {
		return ""
	}

	runes := []rune(trimmed)
	if len(runes) > constants.PreviewLength {
		return string(runes[:constants.PreviewLength]) + constants.PreviewEllipsis
	}
	return trimmed
}

// WordCount counts the whitespace-separated tokens in content.
func WordCount(content string) int {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// IsWelcome reports whether content is the first-run welcome entry.
func IsWelcome(content string) bool {
	return strings.Contains(content, constants.WelcomeMarker)
}

// DisplayDate renders a creation time for listings, e.g. "Mar 9".
func DisplayDate(t time.Time) string {
	return t.Format(constants.DisplayDateLayout)
}
