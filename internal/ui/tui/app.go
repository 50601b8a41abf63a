package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/logger"
)

type model struct {
	theme Theme
	deps  Deps

	table   table.Model
	snap    domain.Snapshot
	stats   domain.Stats
	seed    uint64
	running bool
	toast   string

	width    int
	height   int
	quitting bool
}

// Run starts the live view and blocks until the user quits. The simulation
// is stopped before the program exits, so no worker goroutine outlives the
// screen.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	columns := []table.Column{
		{Title: "Vehicle ID", Width: 10},
		{Title: "", Width: 4},
		{Title: "Type", Width: 8},
		{Title: "Direction", Width: 9},
		{Title: "State", Width: 9},
		{Title: "Duration", Width: 9},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		Bold(true).
		Foreground(colorDarkNavy).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorNavy).
		BorderBottom(true)
	st.Selected = st.Selected.Foreground(colorOffWhite).Background(colorNavy)
	tbl.SetStyles(st)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		table: tbl,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdStartSim(m.deps), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - 24
		if h < 4 {
			h = 4
		}
		m.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.running {
				// Quit only after the engine has drained its workers.
				m.quitting = true
				return m, cmdStopSim(m.deps)
			}
			return m, tea.Quit

		case "s":
			if m.running {
				return m, cmdStopSim(m.deps)
			}
			return m, cmdStartSim(m.deps)
		}

	case simStartedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.running = true
		m.seed = msg.seed
		m.toast = ""
		return m, cmdRefresh(m.deps)

	case simStoppedMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		} else {
			m.stats = msg.stats
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, cmdRefresh(m.deps)

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if m.running {
			cmds = append(cmds, cmdRefresh(m.deps))
		}
		return m, tea.Batch(cmds...)

	case refreshedMsg:
		m.snap = msg.snap
		m.stats = msg.stats
		m.table.SetRows(vehicleRows(msg.snap))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("🚦 Traffic Intersection Tracker 🚗") + "\n" +
		m.theme.Subtitle.Render("Concurrent four-way crossing, one worker per vehicle") + "\n"

	stats := renderStats(m.theme, m.stats, m.seed, m.running)
	grid := renderGrid(m.theme, m.snap.Occupancy())
	legend := strings.Join([]string{
		m.theme.Waiting.Render("● waiting"),
		m.theme.Crossing.Render("● crossing"),
		m.theme.Passed.Render("● passed"),
	}, "  ")

	help := m.theme.Help.Render("↑/↓ scroll • s start/stop • q quit")
	if m.deps.Debug {
		if p := logger.Path(); p != "" {
			help += "\n" + m.theme.Help.Render("log: "+p)
		}
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	return wrap.Render(header + "\n" + stats + "\n\n" + grid + "\n" + legend + "\n\n" +
		m.theme.Card.Render(m.table.View()) + "\n" + help + toast)
}

func vehicleRows(snap domain.Snapshot) []table.Row {
	rows := make([]table.Row, 0, snap.Len())
	for _, v := range snap.Vehicles {
		rows = append(rows, table.Row{
			v.ID,
			emojiFor(v.ID),
			clampString(string(v.Type), 8),
			string(v.Direction),
			string(v.State),
			fmtMS(v.Elapsed(snap.TakenAt)),
		})
	}
	return rows
}
