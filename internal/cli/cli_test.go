package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{"run", "validate", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"config", "seed"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on root command", flag)
		}
	}
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected persistent --debug flag on root command")
	}
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := runCmd()
	if cmd.Use != "run" {
		t.Errorf("expected Use=run, got %q", cmd.Use)
	}
	for _, flag := range []string{"config", "for", "seed", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on run command", flag)
		}
	}
}

func TestValidateCmd_Flags(t *testing.T) {
	cmd := validateCmd()
	if cmd.Use != "validate" {
		t.Errorf("expected Use=validate, got %q", cmd.Use)
	}
	if cmd.Flags().Lookup("config") == nil {
		t.Error("expected --config flag on validate command")
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- printReport ---

func sampleReport() domain.RunReport {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.RunReport{
		StartedAt: start,
		EndedAt:   start.Add(30 * time.Second),
		Seed:      42,
		Stats: domain.Stats{
			Generated: 18,
			Passed:    18,
			Removed:   18,
		},
	}
}

func TestPrintReport_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["seed"] != float64(42) {
		t.Errorf("expected seed=42, got %v", payload["seed"])
	}
	if payload["generated"] != float64(18) {
		t.Errorf("expected generated=18, got %v", payload["generated"])
	}
	if payload["duration"] != "30s" {
		t.Errorf("expected duration=30s, got %v", payload["duration"])
	}
}

func TestPrintReport_Pretty_ContainsCounters(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Generated: 18", "Passed:    18", "Active:    0", "Seed:      42"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pretty output, got:\n%s", want, out)
		}
	}
}

func TestPrintReport_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, domain.RunReport{}, ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
}

func TestPrintReport_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, domain.RunReport{}, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

func TestPrintPrettyReport_HidesDroppedWhenZero(t *testing.T) {
	var buf bytes.Buffer
	printPrettyReport(&buf, sampleReport())
	if strings.Contains(buf.String(), "Dropped") {
		t.Errorf("expected no Dropped line for zero drops, got:\n%s", buf.String())
	}

	rep := sampleReport()
	rep.Stats.Dropped = 3
	buf.Reset()
	printPrettyReport(&buf, rep)
	if !strings.Contains(buf.String(), "Dropped:   3") {
		t.Errorf("expected Dropped line, got:\n%s", buf.String())
	}
}

func TestReportDuration_ZeroTimes(t *testing.T) {
	if d := reportDuration(domain.RunReport{}); d != 0 {
		t.Errorf("expected 0 duration for zero timestamps, got %v", d)
	}
}

// --- printConfig ---

func TestPrintConfig_ShowsEffectiveSettings(t *testing.T) {
	var buf bytes.Buffer
	cfg := domain.DefaultConfig()
	cfg.Seed = 7
	cfg.MaxActive = 12
	printConfig(&buf, cfg)
	out := buf.String()

	for _, want := range []string{"Car, Truck, Bus", "North, South, East, West", "1s-3s", "5s", "Seed:          7", "Max active:    12"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in config output, got:\n%s", want, out)
		}
	}
}

func TestPrintConfig_HidesUnsetSeedAndCap(t *testing.T) {
	var buf bytes.Buffer
	printConfig(&buf, domain.DefaultConfig())
	out := buf.String()
	if strings.Contains(out, "Seed:") {
		t.Errorf("expected no Seed line for zero seed, got:\n%s", out)
	}
	if strings.Contains(out, "Max active:") {
		t.Errorf("expected no Max active line for uncapped config, got:\n%s", out)
	}
}

// --- fmtRange ---

func TestFmtRange(t *testing.T) {
	cases := []struct {
		in   domain.DelayRange
		want string
	}{
		{domain.DelayRange{Min: time.Second, Max: 3 * time.Second}, "1s-3s"},
		{domain.DelayRange{Min: 2 * time.Second, Max: 2 * time.Second}, "2s"},
		{domain.DelayRange{Min: 500 * time.Millisecond, Max: 1500 * time.Millisecond}, "500ms-1.5s"},
	}
	for _, c := range cases {
		if got := fmtRange(c.in); got != c.want {
			t.Errorf("fmtRange(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
