package ports

import "github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"

// ConfigLoader resolves the simulation config from a source (e.g., filesystem).
type ConfigLoader interface {
	Load(path string) (domain.Config, error)
}
