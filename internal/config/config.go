// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "fc-audit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config holds the ambient defaults fc-audit reads before flag handling.
type Config struct {
	// Verbose enables debug logging when no flag overrides it.
	Verbose bool
	// LogFile is an optional path logs are also written to.
	LogFile string
	// Format is the report format used when no selector flag is given:
	// "text", "json", or "csv".
	Format string
}

// configFilePathOverride allows --config to bypass the standard lookup.
var configFilePathOverride string

// configDirOverride allows tests to redirect the config directory.
var configDirOverride string

// SetConfigFilePathOverride points loading at an explicit config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// SetConfigDirOverride redirects the config directory; tests use this with
// t.TempDir. Pass the empty string to restore the standard lookup.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the fc-audit configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration file and environment. A missing config file
// is not an error; defaults apply. An unreadable or malformed file is
// reported so the user learns their configuration was ignored.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
	v.SetDefault("format", "text")

	v.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(AppName), "-", "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return defaultConfig(), err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return configFromViper(v), nil
		}
		return defaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}

	cfg := configFromViper(v)
	if err := cfg.validate(); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

func configFromViper(v *viper.Viper) *Config {
	return &Config{
		Verbose: v.GetBool("verbose"),
		LogFile: v.GetString("log_file"),
		Format:  v.GetString("format"),
	}
}

func defaultConfig() *Config {
	return &Config{Format: "text"}
}

func (c *Config) validate() error {
	switch c.Format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be one of text, json, csv", c.Format)
	}
}
