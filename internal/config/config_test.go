package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "check-docker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "/var/run/docker.sock", cfg.DockerSocket)
	assert.False(t, cfg.PerformanceData)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
docker_socket: /run/user/1000/docker.sock
enable_performance_data: true
timeout: 5s
format: table
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000/docker.sock", cfg.DockerSocket)
	assert.True(t, cfg.PerformanceData)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.Equal(t, "error", cfg.LogLevel, "keys absent from the file keep their default")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "timeout: [not a duration"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty socket", func(c *Config) { c.DockerSocket = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	cfg.Timeout = 0
	assert.NoError(t, cfg.Validate(), "zero timeout disables it")
}
