package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders a kind of CLI text in color, or with a plain-text
// decoration when color is off.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Join formats every item and joins them with sep.
func (f Formatter) Join(items []string, sep string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = f.Sprint(item)
	}
	return strings.Join(out, sep)
}

// EnsureNewline appends a newline to s if it does not already end in one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor honours NO_COLOR (https://no-color.org/) and fatih/color's own
// terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// ColorEnabled reports whether formatters currently emit color.
func ColorEnabled() bool {
	return !noColor()
}

var (
	// Code is for runnable commands. `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	Path = Formatter{color.New(color.FgYellow), "", ""}

	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Name is for secret names. Plain without color so lists stay pasteable.
	Name = Formatter{color.New(color.FgCyan, color.Bold), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}

	Error = Formatter{color.New(color.FgRed), "", ""}

	Warning = Formatter{color.New(color.FgYellow), "", ""}

	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight is for user values such as usernames. 'single quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted is for secondary text. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Status marks used at the start of command output lines.
func SuccessMark() string { return Success.Sprint("✓") }
func ErrorMark() string { return Error.Sprint("✗") }
func WarningMark() string { return Warning.Sprint("⚠") }
func InfoMark() string { return Info.Sprint("→") }
