package configs

import (
	"fmt"
	"strings"

	"log-stats/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOGSTATS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("report.top_n", 10)
	v.SetDefault("report.format", "json")
	v.SetDefault("report.save", false)
	v.SetDefault("storage.root_dir", "./data")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)
}

// LoadConfig builds the configuration from defaults, an optional YAML file and LOGSTATS_*
// environment variables (e.g. LOGSTATS_LOG_LEVEL), then validates it.
// An empty configPath skips the file.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err))
	}

	return &cfg, nil
}
