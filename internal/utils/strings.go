package utils

import (
	"strings"

	"github.com/PolarWolf314/ghsecrets/internal/ui"
)

// FormatNames formats secret names as an indented list, one per line.
func FormatNames(names []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString("    - ")
		b.WriteString(ui.Highlight.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}

// Plural returns singular when n is 1 and singular+"s" otherwise.
func Plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
