package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

// Grid cell indices, row-major. The four approach zones sit on the cross
// arms, the center cell is the intersection core.
const (
	cellNorth = 1
	cellWest  = 3
	cellCore  = 4
	cellEast  = 5
	cellSouth = 7
)

// renderGrid draws the 3x3 intersection. Crossing vehicles show up in the
// cell of their zone; when several vehicles cross the same zone at once,
// every one of them is drawn.
func renderGrid(t Theme, occ map[domain.Zone][]domain.Vehicle) string {
	var content [9]string
	var styles [9]lipgloss.Style
	for i := range styles {
		styles[i] = t.CellEmpty
	}
	styles[cellCore] = t.CellCore

	place := func(idx int, zone domain.Zone) {
		vs := occ[zone]
		if len(vs) == 0 {
			return
		}
		body := emojiRows(vs)
		if len(vs) > 1 {
			body = fmt.Sprintf("×%d\n%s", len(vs), body)
		}
		content[idx] = body
		styles[idx] = t.CellOccupied
	}
	place(cellNorth, domain.ZoneA)
	place(cellSouth, domain.ZoneB)
	place(cellEast, domain.ZoneC)
	place(cellWest, domain.ZoneD)

	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			i := r*3 + c
			cells = append(cells, styles[i].Render(content[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// emojiRows lays vehicle emojis out in short rows so a busy zone stays
// readable instead of dropping vehicles.
func emojiRows(vs []domain.Vehicle) string {
	const perRow = 4
	lines := make([]string, 0, (len(vs)+perRow-1)/perRow)
	cur := make([]string, 0, perRow)
	for _, v := range vs {
		cur = append(cur, emojiFor(v.ID))
		if len(cur) == perRow {
			lines = append(lines, strings.Join(cur, " "))
			cur = cur[:0]
		}
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return strings.Join(lines, "\n")
}
