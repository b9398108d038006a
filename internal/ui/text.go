package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Yellow, or `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success indicators.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats failure indicators and status codes.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats skip indicators and warnings.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values such as repository names.
	// Cyan, or 'single quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. Gray, or (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Line marks.
const (
	MarkSuccess = "✓"
	MarkFailure = "✗"
	MarkSkip    = "⚠"
	MarkHint    = "→"
)

// SuccessLine returns "✓ <message>".
func SuccessLine(format string, a ...interface{}) string {
	return Success.Sprint(MarkSuccess) + " " + fmt.Sprintf(format, a...)
}

// FailureLine returns "✗ <message>".
func FailureLine(format string, a ...interface{}) string {
	return Error.Sprint(MarkFailure) + " " + fmt.Sprintf(format, a...)
}

// SkipLine returns "⚠ <message>".
func SkipLine(format string, a ...interface{}) string {
	return Warning.Sprint(MarkSkip) + " " + fmt.Sprintf(format, a...)
}

// HintLine returns "→ <message>".
func HintLine(format string, a ...interface{}) string {
	return Info.Sprint(MarkHint) + " " + fmt.Sprintf(format, a...)
}
