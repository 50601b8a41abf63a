package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/config"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/logger"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/workspacefinder"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/sim"
)

// simContext is what a command needs before it can drive the engine: the
// workspace root (logs live under it) and the effective configuration.
type simContext struct {
	root string
	cfg  domain.Config
}

// loadSimContext resolves the workspace root and the effective config. An
// empty cfgPath lets the loader discover trafficsim.yaml upward from the
// working directory; a non-zero seed overrides whatever the config said.
func loadSimContext(cfgPath string, seed uint64) (*simContext, error) {
	root := resolveWorkspaceRoot()

	loader := config.NewLoader(config.WithLocator(workspacefinder.NewFinder()))
	cfg, err := loader.Load(strings.TrimSpace(cfgPath))
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	return &simContext{root: root, cfg: cfg}, nil
}

// newEngine builds the engine with the ambient logger and log observer wired
// in, so vehicle lifecycles land in the workspace log file.
func (sc *simContext) newEngine() (*sim.Engine, error) {
	return sim.NewEngine(sc.cfg,
		sim.WithLogger(logger.L()),
		sim.WithObservers(sim.NewLogObserver(logger.L())),
	)
}

// resolveWorkspaceRoot walks upward looking for trafficsim.yaml and falls
// back to the working directory, which still gives logs a home when the user
// never ran init.
func resolveWorkspaceRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	finder := workspacefinder.NewFinder()
	if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
		return root
	}
	return wd
}

// setupLogging wires the global file logger under root. Logging is best
// effort: commands still run when the log file cannot be opened.
func setupLogging(root string, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
	if cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func debugFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("debug")
	return v
}
