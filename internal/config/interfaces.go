package config

// ManagerInterface defines configuration management operations
type ManagerInterface interface {
	Load() (*Config, error)
	Save(*Config) error
	Path() string
}

// Ensure Manager implements ManagerInterface
var _ ManagerInterface = (*Manager)(nil)
