package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"db_host"`
	DBPort     int    `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	WatchDir   string `mapstructure:"watch_dir"`
}

// LoadConfig reads configuration from an optional recontrack.yaml and from
// RECONTRACK_* environment variables. Env vars win; a missing config file is
// not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("recontrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/recontrack")
	v.AddConfigPath("$HOME/.recontrack")

	v.SetEnvPrefix("RECONTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "recontrack")
	v.SetDefault("db_password", "recontrack")
	v.SetDefault("db_name", "recontrack")
	v.SetDefault("watch_dir", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
