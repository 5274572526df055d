package utils

import (
	"math"
	"strings"
)

// Truncate shortens s to at most n characters, appending "..." when cut.
// Used to keep prior answers small in the interviewer context window.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Round2 rounds to 2 decimal places, used for average score reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func NormalizeTechnology(technology string) string {
	return strings.TrimSpace(technology)
}

func NormalizePosition(position string) string {
	return strings.TrimSpace(position)
}
