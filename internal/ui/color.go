package ui

import (
	"os"

	"golang.org/x/term"

	"github.com/vctasks/vct/task"
)

const (
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

// Dot renders a calendar marking dot in its density color.
func Dot(color string) string {
	return colorize(ansiForMarking(color), "●")
}

// Highlight renders text in the selected-date highlight color.
func Highlight(value string) string {
	return colorize(ansiBold+ansiBlue, value)
}

// Bold renders text in bold.
func Bold(value string) string {
	return colorize(ansiBold, value)
}

func ansiForMarking(color string) string {
	switch color {
	case task.DotColorRed:
		return ansiRed
	case task.DotColorGreen:
		return ansiGreen
	default:
		return ""
	}
}

func colorize(code, value string) string {
	if code == "" || !ansiEnabled() {
		return value
	}
	return code + value + ansiReset
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
