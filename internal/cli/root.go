package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/logger"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cfgPath string
	var seed uint64

	cmd := &cobra.Command{
		Use:          "trafficsim",
		Short:        "Trafficsim — live four-way intersection simulator",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			sc, err := loadSimContext(cfgPath, seed)
			if err != nil {
				return err
			}

			cleanup := setupLogging(sc.root, debug)
			defer cleanup()

			eng, err := sc.newEngine()
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Sim:           eng,
				Config:        sc.cfg,
				WorkspaceRoot: sc.root,
				Logger:        logger.L(),
				Debug:         debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .trafficsim/logs/trafficsim.log")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Config file (optional; trafficsim.yaml autodetected if omitted)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Override the random seed (0 keeps the configured one)")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
