package usecase

import (
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// ValidateConfig loads a config file and checks it without starting a run.
type ValidateConfig struct {
	loader ports.ConfigLoader
}

func NewValidateConfig(loader ports.ConfigLoader) *ValidateConfig {
	return &ValidateConfig{loader: loader}
}

// Execute returns the effective config when path points at a usable file.
// An empty path means "defaults plus whatever the loader discovers".
func (uc *ValidateConfig) Execute(path string) (domain.Config, error) {
	cfg, err := uc.loader.Load(path)
	if err != nil {
		return domain.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
