package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorNavy     = lipgloss.Color("#006884")
	colorOffWhite = lipgloss.Color("#F2F1EF")
	colorTeal     = lipgloss.Color("#97BCC7")
	colorDarkNavy = lipgloss.Color("#053D57")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Grid cells. Occupied cells take the crossing color, the center cell
	// marks the intersection core.
	CellEmpty    lipgloss.Style
	CellOccupied lipgloss.Style
	CellCore     lipgloss.Style

	Waiting  lipgloss.Style
	Crossing lipgloss.Style
	Passed   lipgloss.Style
}

func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().
		Width(11).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDarkNavy)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorNavy),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorNavy),
		Toast: lipgloss.NewStyle().Foreground(colorOffWhite).Background(colorDarkNavy).Padding(0, 1),

		StatLabel: lipgloss.NewStyle().Faint(true),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(colorDarkNavy),

		CellEmpty:    cell.Foreground(colorDarkNavy),
		CellOccupied: cell.Background(colorNavy).Foreground(colorOffWhite),
		CellCore:     cell.Background(colorTeal),

		Waiting:  lipgloss.NewStyle().Foreground(colorTeal),
		Crossing: lipgloss.NewStyle().Foreground(colorNavy),
		Passed:   lipgloss.NewStyle().Faint(true),
	}
}
