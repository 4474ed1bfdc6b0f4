package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. WARZONE_MAP_DIR.
const EnvPrefix = "WARZONE"

// Config holds application configuration.
type Config struct {
	MapDir            string `mapstructure:"map_dir"`
	LogLevel          string `mapstructure:"log_level"`
	LogFile           string `mapstructure:"log_file"`
	GameLog           string `mapstructure:"game_log"`
	Seed              int64  `mapstructure:"seed"`
	RedisURL          string `mapstructure:"redis_url"`
	MaxIssueCalls     int    `mapstructure:"max_issue_calls"`
	TournamentWorkers int    `mapstructure:"tournament_workers"`
}

var defaults = map[string]any{
	"map_dir":            "maps",
	"log_level":          "info",
	"log_file":           "",
	"game_log":           "warzone.log",
	"seed":               0,
	"redis_url":          "",
	"max_issue_calls":    50,
	"tournament_workers": 0,
}

// Load reads configuration from WARZONE_* environment variables, layered
// over the file named by WARZONE_CONFIG when that is set.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(EnvPrefix + "_CONFIG"))
}

// LoadFile reads configuration from path (YAML, TOML or JSON by extension)
// and the environment. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
