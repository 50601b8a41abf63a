package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// fmtMS renders a duration as whole milliseconds.
func fmtMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func renderStats(t Theme, stats domain.Stats, seed uint64, running bool) string {
	state := "stopped"
	if running {
		state = "running"
	}

	pair := func(label string, value string) string {
		return t.StatLabel.Render(label+" ") + t.StatValue.Render(value)
	}

	parts := []string{
		pair("state", state),
		pair("active", fmt.Sprintf("%d", stats.Active)),
		pair("generated", fmt.Sprintf("%d", stats.Generated)),
		pair("passed", fmt.Sprintf("%d", stats.Passed)),
		pair("removed", fmt.Sprintf("%d", stats.Removed)),
	}
	if stats.Dropped > 0 {
		parts = append(parts, pair("dropped", fmt.Sprintf("%d", stats.Dropped)))
	}
	if seed != 0 {
		parts = append(parts, pair("seed", fmt.Sprintf("%d", seed)))
	}
	return strings.Join(parts, t.StatLabel.Render("  •  "))
}
