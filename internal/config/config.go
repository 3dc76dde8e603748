// Package config loads roster settings from defaults, an optional YAML file,
// ROSTER_* environment variables and command-line flags, in rising precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrled/suns/roster/internal/logger"
	"github.com/mrled/suns/roster/internal/repository"
	"github.com/mrled/suns/roster/internal/repository/memrepo"
)

// EnvPrefix is prepended to every environment variable, e.g. ROSTER_STORE_PATH
const EnvPrefix = "ROSTER"

type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Log      LogConfig      `mapstructure:"log"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

type StoreConfig struct {
	Path                 string `mapstructure:"path"`
	DynamoTable          string `mapstructure:"dynamodb_table"`
	DynamoEndpoint       string `mapstructure:"dynamodb_endpoint"`
	RejectDuplicateRolls bool   `mapstructure:"reject_duplicate_rolls"`
}

type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

type SnapshotConfig struct {
	Bucket string `mapstructure:"bucket"`
	Key    string `mapstructure:"key"`
}

// FlagKeys maps command-line flag names to configuration keys
var FlagKeys = map[string]string{
	"file":              "store.path",
	"dynamodb-table":    "store.dynamodb_table",
	"dynamodb-endpoint": "store.dynamodb_endpoint",
	"reject-duplicates": "store.reject_duplicate_rolls",
	"log-level":         "log.level",
	"log-format":        "log.format",
	"bucket":            "snapshot.bucket",
	"key":               "snapshot.key",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", memrepo.DefaultPath)
	v.SetDefault("store.dynamodb_table", "")
	v.SetDefault("store.dynamodb_endpoint", "")
	v.SetDefault("store.reject_duplicate_rolls", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.add_source", false)
	v.SetDefault("snapshot.bucket", "")
	v.SetDefault("snapshot.key", memrepo.DefaultPath)
}

// Load builds the configuration. configFile, when set, must exist; otherwise
// roster.yaml is searched in the working directory and the user config directory.
// Only flags that were explicitly set override file and environment values.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("roster")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(userConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: binding flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "roster")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "roster")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Store.Path == "" && c.Store.DynamoTable == "" {
		return fmt.Errorf("config: store.path or store.dynamodb_table is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

// Repository returns the repository factory configuration
func (c *Config) Repository() repository.RepositoryConfig {
	return repository.RepositoryConfig{
		FilePath:             c.Store.Path,
		DynamoTable:          c.Store.DynamoTable,
		DynamoEndpoint:       c.Store.DynamoEndpoint,
		RejectDuplicateRolls: c.Store.RejectDuplicateRolls,
	}
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	cfg.AddSource = c.Log.AddSource
	return cfg
}
