package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

// MapConfig applies the parsed file on top of the built-in defaults. Absent
// fields keep their default values, so a two-line trafficsim.yaml is valid.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if len(y.Vehicles.Types) > 0 {
		types := make([]domain.VehicleType, 0, len(y.Vehicles.Types))
		for i, t := range y.Vehicles.Types {
			t = strings.TrimSpace(t)
			if t == "" {
				return domain.Config{}, invalidField(path, fmt.Sprintf("vehicles.types[%d]", i), "empty type")
			}
			types = append(types, domain.VehicleType(t))
		}
		cfg.VehicleTypes = types
	}

	if len(y.Vehicles.Directions) > 0 {
		dirs := make([]domain.Direction, 0, len(y.Vehicles.Directions))
		for i, d := range y.Vehicles.Directions {
			dir := domain.Direction(strings.TrimSpace(d))
			if !dir.Valid() {
				return domain.Config{}, invalidField(path, fmt.Sprintf("vehicles.directions[%d]", i), fmt.Sprintf("unknown direction %q", d))
			}
			dirs = append(dirs, dir)
		}
		cfg.Directions = dirs
	}

	var err error
	if cfg.WaitingDelay, err = mapRange(path, "timing.waiting", y.Timing.Waiting, cfg.WaitingDelay); err != nil {
		return domain.Config{}, err
	}
	if cfg.CrossingDelay, err = mapRange(path, "timing.crossing", y.Timing.Crossing, cfg.CrossingDelay); err != nil {
		return domain.Config{}, err
	}
	if cfg.ArrivalDelay, err = mapRange(path, "timing.arrival", y.Timing.Arrival, cfg.ArrivalDelay); err != nil {
		return domain.Config{}, err
	}

	if strings.TrimSpace(y.Timing.Grace) != "" {
		grace, perr := time.ParseDuration(strings.TrimSpace(y.Timing.Grace))
		if perr != nil {
			return domain.Config{}, invalidField(path, "timing.grace", perr.Error())
		}
		cfg.GracePeriod = grace
	}

	if y.Seed != nil {
		cfg.Seed = *y.Seed
	}
	if y.MaxActive != nil {
		cfg.MaxActive = *y.MaxActive
	}

	return cfg, nil
}

func mapRange(path, field string, y YAMLDelayRange, def domain.DelayRange) (domain.DelayRange, error) {
	out := def
	if strings.TrimSpace(y.Min) != "" {
		min, err := time.ParseDuration(strings.TrimSpace(y.Min))
		if err != nil {
			return domain.DelayRange{}, invalidField(path, field+".min", err.Error())
		}
		out.Min = min
	}
	if strings.TrimSpace(y.Max) != "" {
		max, err := time.ParseDuration(strings.TrimSpace(y.Max))
		if err != nil {
			return domain.DelayRange{}, invalidField(path, field+".max", err.Error())
		}
		out.Max = max
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
