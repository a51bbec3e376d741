package caltui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	titleBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)

	paneStyle       = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	paneActiveStyle = paneStyle.Copy().BorderForeground(lipgloss.Color("33"))

	weekdayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dayStyle      = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle   = dayStyle.Copy().Reverse(true)
	selectedStyle = dayStyle.Copy().Foreground(lipgloss.Color("33")).Bold(true)

	dotGreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dotRedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	labelStyle         = lipgloss.NewStyle().Bold(true)
	valueMuted         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	selectedBorder     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
)
