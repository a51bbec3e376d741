// Package config handles loading vct.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvBaseURL overrides the configured API base URL when set.
const EnvBaseURL = "VCT_API_URL"

// Config represents the vct.toml configuration file.
type Config struct {
	API API `toml:"api"`
}

// API contains the remote endpoint configuration.
type API struct {
	// BaseURL is the task API base URL, e.g. "http://localhost/api".
	BaseURL string `toml:"base-url"`

	// TimeoutSeconds bounds each HTTP request. Zero means no timeout.
	TimeoutSeconds int `toml:"timeout-seconds"`
}

// Timeout returns the configured request timeout as a duration.
func (a API) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load loads configuration from the project directory and the global config
// file, with project values winning over global ones and the VCT_API_URL
// environment variable winning over both. Returns an empty config if no
// config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, "vct.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if fromEnv := strings.TrimSpace(os.Getenv(EnvBaseURL)); fromEnv != "" {
		merged.API.BaseURL = fromEnv
	}
	return merged, nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "vct", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.API.BaseURL = mergeString(projectMeta.IsDefined("api", "base-url"), projectCfg.API.BaseURL, globalCfg.API.BaseURL)
	if projectMeta.IsDefined("api", "timeout-seconds") {
		merged.API.TimeoutSeconds = projectCfg.API.TimeoutSeconds
	} else {
		merged.API.TimeoutSeconds = globalCfg.API.TimeoutSeconds
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
