package domain

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestDelayRangeDuration(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))

	r := DelayRange{Min: time.Second, Max: 3 * time.Second}
	for i := 0; i < 1000; i++ {
		d := r.Duration(rng)
		if d < r.Min || d >= r.Max {
			t.Fatalf("Duration() = %v, want in [%v, %v)", d, r.Min, r.Max)
		}
	}

	fixed := DelayRange{Min: 2 * time.Second, Max: 2 * time.Second}
	if d := fixed.Duration(rng); d != 2*time.Second {
		t.Errorf("degenerate range Duration() = %v, want %v", d, 2*time.Second)
	}
}

func TestDelayRangeDurationDeterministic(t *testing.T) {
	r := DelayRange{Min: time.Second, Max: 3 * time.Second}

	a := rand.New(rand.NewPCG(7, 1))
	b := rand.New(rand.NewPCG(7, 1))
	for i := 0; i < 100; i++ {
		if da, db := r.Duration(a), r.Duration(b); da != db {
			t.Fatalf("draw %d diverged: %v vs %v", i, da, db)
		}
	}
}

func TestDelayRangeValidate(t *testing.T) {
	cases := []struct {
		name    string
		r       DelayRange
		wantErr bool
	}{
		{"ok", DelayRange{Min: time.Second, Max: 2 * time.Second}, false},
		{"equal bounds", DelayRange{Min: time.Second, Max: time.Second}, false},
		{"zero min", DelayRange{Min: 0, Max: time.Second}, false},
		{"negative min", DelayRange{Min: -time.Second, Max: time.Second}, true},
		{"max below min", DelayRange{Min: 2 * time.Second, Max: time.Second}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.r.Validate(); (err != nil) != c.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no vehicle types", func(c *Config) { c.VehicleTypes = nil }},
		{"empty vehicle type", func(c *Config) { c.VehicleTypes = []VehicleType{""} }},
		{"no directions", func(c *Config) { c.Directions = nil }},
		{"unknown direction", func(c *Config) { c.Directions = []Direction{"Up"} }},
		{"duplicate direction", func(c *Config) { c.Directions = []Direction{North, North} }},
		{"bad waiting delay", func(c *Config) { c.WaitingDelay = DelayRange{Min: 2 * time.Second, Max: time.Second} }},
		{"bad crossing delay", func(c *Config) { c.CrossingDelay = DelayRange{Min: -1} }},
		{"bad arrival delay", func(c *Config) { c.ArrivalDelay = DelayRange{Min: 3 * time.Second, Max: time.Second} }},
		{"negative grace", func(c *Config) { c.GracePeriod = -time.Second }},
		{"negative max active", func(c *Config) { c.MaxActive = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := valid
			cfg.VehicleTypes = append([]VehicleType(nil), valid.VehicleTypes...)
			cfg.Directions = append([]Direction(nil), valid.Directions...)
			c.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !IsKind(err, KindInvalidConfig) {
				t.Errorf("expected invalid-config kind, got %v", err)
			}
		})
	}
}
