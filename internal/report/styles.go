package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CBA6F7")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	numberStyle = cellStyle.Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))

	okStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))

	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))
)
