package ports

// WorkspaceLocator finds the directory whose config file governs a run,
// starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
