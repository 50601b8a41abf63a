package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/config"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/workspacefinder"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/usecase"
)

func validateCmd() *cobra.Command {
	var cfgPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a config file and print the effective settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			loader := config.NewLoader(config.WithLocator(workspacefinder.NewFinder()))

			uc := usecase.NewValidateConfig(loader)
			cfg, err := uc.Execute(strings.TrimSpace(cfgPath))
			if err != nil {
				return err
			}

			printConfig(os.Stdout, cfg)
			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&cfgPath, "config", "c", "", "Config file (optional; trafficsim.yaml autodetected if omitted)")
	return c
}

func printConfig(w io.Writer, cfg domain.Config) {
	fmt.Fprintf(w, "Vehicle types: %s\n", joinTypes(cfg.VehicleTypes))
	fmt.Fprintf(w, "Directions:    %s\n", joinDirections(cfg.Directions))
	fmt.Fprintf(w, "Waiting:       %s\n", fmtRange(cfg.WaitingDelay))
	fmt.Fprintf(w, "Crossing:      %s\n", fmtRange(cfg.CrossingDelay))
	fmt.Fprintf(w, "Arrival:       %s\n", fmtRange(cfg.ArrivalDelay))
	fmt.Fprintf(w, "Grace:         %s\n", cfg.GracePeriod)
	if cfg.Seed != 0 {
		fmt.Fprintf(w, "Seed:          %d\n", cfg.Seed)
	}
	if cfg.MaxActive > 0 {
		fmt.Fprintf(w, "Max active:    %d\n", cfg.MaxActive)
	}
	fmt.Fprintln(w)
}

func fmtRange(r domain.DelayRange) string {
	if r.Max <= r.Min {
		return r.Min.String()
	}
	return fmt.Sprintf("%s-%s", r.Min, r.Max)
}

func joinTypes(ts []domain.VehicleType) string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return strings.Join(out, ", ")
}

func joinDirections(ds []domain.Direction) string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = string(d)
	}
	return strings.Join(out, ", ")
}
