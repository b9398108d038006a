// Package ui provides semantic text formatting for ghsecrets output.
//
// Formatters colorize text when the terminal supports it. When NO_COLOR is
// set or color is unavailable, Code adds `backticks`, Highlight adds
// 'quotes', Muted adds (parentheses) and the rest print plain text.
//
// Report lines start with a mark:
//
//	ui.SuccessLine("Set secret: %s", name)          // ✓
//	ui.FailureLine("Failed to set %s: %d", name, s) // ✗
//	ui.SkipLine("Skipping %s", name)                // ⚠
//	ui.HintLine("Run %s", ui.Code.Sprint("..."))    // →
package ui
