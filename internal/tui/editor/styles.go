package editor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	savingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FA0"))

	savedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F5"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F55"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)
