package ports

// ConfigInitializer writes a starter config file into a directory.
type ConfigInitializer interface {
	Init(dir string, force bool) (string, error)
}
