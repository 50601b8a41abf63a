package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshInterval paces snapshot polling. The engine mutates state on its own
// schedule; the view only samples it.
const refreshInterval = 100 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func cmdStartSim(deps Deps) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if err := deps.Sim.Start(context.Background()); err != nil {
			log.Error("run.start.failed", "err", err.Error())
			return simStartedMsg{err: err}
		}
		seed := deps.Sim.Seed()
		log.Info("run.start", "seed", seed, "workspace", deps.WorkspaceRoot, "debug", deps.Debug)
		return simStartedMsg{seed: seed}
	}
}

func cmdStopSim(deps Deps) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if err := deps.Sim.Stop(); err != nil {
			log.Error("run.stop.failed", "err", err.Error())
			return simStoppedMsg{err: err}
		}
		stats := deps.Sim.Stats()
		log.Info("run.stop",
			"generated", stats.Generated,
			"passed", stats.Passed,
			"removed", stats.Removed,
			"dropped", stats.Dropped,
		)
		return simStoppedMsg{stats: stats}
	}
}

func cmdRefresh(deps Deps) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{snap: deps.Sim.Snapshot(), stats: deps.Sim.Stats()}
	}
}
