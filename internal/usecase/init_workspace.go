package usecase

import "github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(dir string, force bool) error {
	return uc.initializer.Init(dir, force)
}
