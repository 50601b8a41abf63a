package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/workspacefinder"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// Env override names, applied on top of file values.
const (
	EnvSeed      = "TRAFFICSIM_SEED"
	EnvMaxActive = "TRAFFICSIM_MAX_ACTIVE"
	EnvGrace     = "TRAFFICSIM_GRACE"
)

// Loader resolves the effective config: built-in defaults, then the nearest
// trafficsim.yaml (or an explicit file), then TRAFFICSIM_* env overrides.
type Loader struct {
	locator ports.WorkspaceLocator
	getenv  func(string) string
}

type LoaderOption func(*Loader)

// WithLocator replaces the upward workspace search.
func WithLocator(l ports.WorkspaceLocator) LoaderOption {
	return func(ld *Loader) { ld.locator = l }
}

// WithGetenv is useful for tests.
func WithGetenv(getenv func(string) string) LoaderOption {
	return func(ld *Loader) { ld.getenv = getenv }
}

func NewLoader(opts ...LoaderOption) *Loader {
	ld := &Loader{
		locator: workspacefinder.NewFinder(),
		getenv:  os.Getenv,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load builds the effective config. With an empty path the nearest
// trafficsim.yaml is used when one exists; running without any config file
// is fine and yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		found, ok := l.discover()
		if !ok {
			return l.applyEnv("", domain.DefaultConfig())
		}
		path = found
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := MapConfig(path, dto)
	if err != nil {
		return domain.Config{}, err
	}
	return l.applyEnv(path, cfg)
}

func (l *Loader) discover() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	root, err := l.locator.FindRoot(cwd)
	if err != nil {
		return "", false
	}
	return filepath.Join(root, workspacefinder.ConfigFileName), true
}

func (l *Loader) applyEnv(path string, cfg domain.Config) (domain.Config, error) {
	if raw := l.getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return domain.Config{}, invalidEnv(path, EnvSeed, raw)
		}
		cfg.Seed = seed
	}
	if raw := l.getenv(EnvMaxActive); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Config{}, invalidEnv(path, EnvMaxActive, raw)
		}
		cfg.MaxActive = max
	}
	if raw := l.getenv(EnvGrace); raw != "" {
		grace, err := time.ParseDuration(raw)
		if err != nil {
			return domain.Config{}, invalidEnv(path, EnvGrace, raw)
		}
		cfg.GracePeriod = grace
	}

	// The loader hands out only configs that validate, no matter whether a
	// bad value came from the file or from the environment.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func invalidEnv(path, name, raw string) error {
	return &domain.OpError{
		Op:   "config.env",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s=%q: %w", name, raw, domain.ErrInvalidConfig),
	}
}
