package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Configuration Structures
////////////////////////////////////////////////////////////////////////////////

// PostgresConfig holds the credential-store postgres connection pieces
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// StoreConfig selects where the access token is kept
type StoreConfig struct {
	Backend    string         `yaml:"backend"` // "memory" or "db"
	Driver     string         `yaml:"driver"`  // "sqlite" or "postgres"
	SqlitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// Config represents the main application configuration
type Config struct {
	Port              string      `yaml:"port"`
	AccessToken       string      `yaml:"access_token"`
	MaxInsightRoutine int         `yaml:"max_insight_routine"`
	InsightTimeoutSec int         `yaml:"insight_timeout_sec"`
	Store             StoreConfig `yaml:"store"`
}

// InsightTimeout returns the per-request insights timeout as a duration
func (c *Config) InsightTimeout() time.Duration {
	return time.Duration(c.InsightTimeoutSec) * time.Second
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Port:              "8080",
		MaxInsightRoutine: 8,
		InsightTimeoutSec: 10,
		Store: StoreConfig{
			Backend:    "memory",
			Driver:     "sqlite",
			SqlitePath: "threadStats.db",
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// Configuration Management Functions
////////////////////////////////////////////////////////////////////////////////

// ReadConfig reads configuration from the specified path
func ReadConfig(path string) (*Config, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	result := DefaultConfig()
	err = yaml.Unmarshal(data, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// WriteConfig writes configuration to the specified path
func WriteConfig(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, bytes.NewReader(data))
	return err
}
