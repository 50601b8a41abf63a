package usecase

import (
	"errors"
	"testing"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

type fakeConfigLoader struct {
	cfg domain.Config
	err error
}

func (l fakeConfigLoader) Load(string) (domain.Config, error) {
	return l.cfg, l.err
}

func TestValidateConfig_OK(t *testing.T) {
	uc := NewValidateConfig(fakeConfigLoader{cfg: domain.DefaultConfig()})

	cfg, err := uc.Execute("trafficsim.yaml")
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if len(cfg.Directions) != 4 {
		t.Errorf("effective config has %d directions, want 4", len(cfg.Directions))
	}
}

func TestValidateConfig_LoaderError(t *testing.T) {
	boom := errors.New("unreadable")
	uc := NewValidateConfig(fakeConfigLoader{err: boom})

	if _, err := uc.Execute("x.yaml"); !errors.Is(err, boom) {
		t.Fatalf("Execute() = %v, want loader error", err)
	}
}

func TestValidateConfig_RejectsBrokenConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.GracePeriod = -1
	uc := NewValidateConfig(fakeConfigLoader{cfg: cfg})

	_, err := uc.Execute("x.yaml")
	if err == nil {
		t.Fatal("Execute() accepted a broken config")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Errorf("expected invalid-config kind, got %v", err)
	}
}

var _ ports.ConfigLoader = (fakeConfigLoader{})
