package tui

import (
	"time"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

type tickMsg time.Time

type simStartedMsg struct {
	seed uint64
	err  error
}

type simStoppedMsg struct {
	stats domain.Stats
	err   error
}

type refreshedMsg struct {
	snap  domain.Snapshot
	stats domain.Stats
}
