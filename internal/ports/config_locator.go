package ports

// ConfigLocator finds the iching config file starting from an arbitrary directory.
type ConfigLocator interface {
	FindConfig(startDir string) (string, error)
}
