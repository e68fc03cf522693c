package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatNagios = "nagios"
	FormatTable  = "table"
)

// Config sisältää checkin konfiguraation
type Config struct {
	DockerSocket    string        `yaml:"docker_socket"`
	PerformanceData bool          `yaml:"enable_performance_data"`
	Timeout         time.Duration `yaml:"timeout"`
	Format          string        `yaml:"format"`
	LogLevel        string        `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		DockerSocket: "/var/run/docker.sock",
		Timeout:      30 * time.Second,
		Format:       FormatNagios,
		LogLevel:     "error",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.DockerSocket == "" {
		return errors.New("docker socket path is empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Format {
	case FormatNagios, FormatTable:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
