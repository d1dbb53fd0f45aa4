package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ReportConfig holds report defaults. Command line flags override them per run.
type ReportConfig struct {
	TopN   int    `mapstructure:"top_n" validate:"required,min=1"`
	Format string `mapstructure:"format" validate:"required,oneof=json table"`
	Save   bool   `mapstructure:"save"`
}

// StorageConfig holds where saved reports are written.
type StorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ServerConfig holds configuration of the serve command.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds
}
