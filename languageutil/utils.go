package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Casers keep state between calls, so every helper builds its own.

// Fold returns the case-folded form of s, suitable for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
