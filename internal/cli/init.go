package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/fsworkspace"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a trafficsim workspace in the target directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			dir := strings.TrimSpace(path)
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				dir = wd
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Target directory (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing trafficsim.yaml")
	return c
}
