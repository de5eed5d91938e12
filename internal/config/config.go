package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                int    `mapstructure:"port"                  validate:"required,gt=0,lt=65536"`
	LogLevel            string `mapstructure:"log_level"             validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"  validate:"gt=0"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URL is the store endpoint.
	URL string `mapstructure:"url" validate:"required,url"`

	// ServiceRoleKey is the privileged credential used to connect. It
	// replaces any password embedded in URL.
	ServiceRoleKey string `mapstructure:"service_role_key" validate:"required"`

	MaxOpenConns int  `mapstructure:"max_open_conns" validate:"gt=0"`
	AutoMigrate  bool `mapstructure:"auto_migrate"`
}
