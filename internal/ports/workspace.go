package ports

// WorkspaceInitializer scaffolds a config file into a directory.
type WorkspaceInitializer interface {
	Init(dir string, force bool) error
}
