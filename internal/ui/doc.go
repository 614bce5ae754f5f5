// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or the terminal has no color support, a plain-text decoration is
// used instead:
//
//	ui.Code.Sprint("envseal init")    // `envseal init`
//	ui.Path.Sprint(".envseal.json")   // .envseal.json
//	ui.Name.Sprint("API_KEY")         // API_KEY
//	ui.Highlight.Sprint("alice")      // 'alice'
//	ui.Muted.Sprint("replaced")       // (replaced)
//
// Command output lines start with one of the status marks: SuccessMark (✓),
// ErrorMark (✗), WarningMark (⚠) or InfoMark (→).
package ui
