package config

// YAMLConfig mirrors trafficsim.yaml. Every field is optional; unset fields
// keep their defaults. Durations are Go duration strings ("1500ms", "3s").
type YAMLConfig struct {
	Vehicles YAMLVehicles `yaml:"vehicles"`
	Timing   YAMLTiming   `yaml:"timing"`

	Seed      *uint64 `yaml:"seed"`
	MaxActive *int    `yaml:"max_active"`
}

type YAMLVehicles struct {
	Types      []string `yaml:"types"`
	Directions []string `yaml:"directions"`
}

type YAMLTiming struct {
	Waiting  YAMLDelayRange `yaml:"waiting"`
	Crossing YAMLDelayRange `yaml:"crossing"`
	Arrival  YAMLDelayRange `yaml:"arrival"`
	Grace    string         `yaml:"grace"`
}

type YAMLDelayRange struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}
