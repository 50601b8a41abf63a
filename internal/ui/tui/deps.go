package tui

import (
	"log/slog"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

type Deps struct {
	Sim    ports.Simulation
	Config domain.Config

	WorkspaceRoot string

	Logger *slog.Logger
	Debug  bool
}
