// Package config loads user settings from a YAML file and MENDLY_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Companion modes.
const (
	CompanionAuto     = "auto"     // model when configured, else scripted
	CompanionScripted = "scripted" // never call a model
	CompanionLLM      = "llm"      // model required
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Breathing BreathingConfig `mapstructure:"breathing"`
	Companion CompanionConfig `mapstructure:"companion"`
	LLM       LLMConfig       `mapstructure:"llm"`
}

// DatabaseConfig holds sqlite settings. An empty path means the default
// data directory.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// BreathingConfig points at user-defined programs.
type BreathingConfig struct {
	ProgramsFile string `mapstructure:"programs_file"`
}

// CompanionConfig selects how chat replies are produced.
type CompanionConfig struct {
	Mode string `mapstructure:"mode"`
}

// LLMConfig overrides provider settings taken from the environment.
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

// Dir returns the configuration directory, $XDG_CONFIG_HOME/mendly or
// ~/.config/mendly.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mendly")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "mendly")
	}
	return filepath.Join(home, ".config", "mendly")
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "mendly")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "state", "mendly")
	}
	return filepath.Join(home, ".local", "state", "mendly")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")
	v.SetDefault("log.file", filepath.Join(stateDir(), "mendly.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("breathing.programs_file", filepath.Join(Dir(), "programs.yaml"))
	v.SetDefault("companion.mode", CompanionAuto)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
}

// Load reads configuration from path, or from MENDLY_CONFIG, or from
// config.yaml in Dir. A missing file at the default location is not an
// error; a missing explicit file is. Environment variables with the
// MENDLY_ prefix override file values, e.g. MENDLY_COMPANION_MODE.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("MENDLY_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MENDLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the application cannot act on.
func (c Config) Validate() error {
	switch c.Companion.Mode {
	case CompanionAuto, CompanionScripted, CompanionLLM:
	default:
		return fmt.Errorf("companion.mode: unknown mode %q (want auto, scripted or llm)", c.Companion.Mode)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}
