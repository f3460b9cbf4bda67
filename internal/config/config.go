package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tabqa/tabqa/internal/metrics"
)

// Config is the auditor's configuration surface. Flags override env
// overrides file overrides defaults.
type Config struct {
	ZThreshold float64 `mapstructure:"z_threshold" yaml:"z_threshold"`
	Workers    int     `mapstructure:"workers" yaml:"workers"`
	Recursive  bool    `mapstructure:"recursive" yaml:"recursive"`
	Output     string  `mapstructure:"output" yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ZThreshold: metrics.DefaultZThreshold,
		Workers:    0, // auto-detect
	}
}

// Load loads configuration from file, env, and defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TABQA")
	v.AutomaticEnv()

	v.SetDefault("z_threshold", metrics.DefaultZThreshold)
	v.SetDefault("workers", 0)
	v.SetDefault("recursive", false)
	v.SetDefault("output", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".tabqa"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		// No default config file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or to ~/.tabqa/config.yaml when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tabqa")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
