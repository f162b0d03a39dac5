package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentpulse/pkg/contracts/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studentpulse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int64(20971520), cfg.Upload.MaxBytes)
	assert.Nil(t, cfg.NormalizationOverrides())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
logging:
  level: debug
  format: text
normalization:
  智育:
    min: 0
    max: 90
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	overrides := cfg.NormalizationOverrides()
	require.Len(t, overrides, 1)
	assert.Equal(t, domain.ScoreRange{Min: 0, Max: 90}, overrides[domain.KindIntellectual])
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("STUPULSE_SERVER_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad log level", content: "logging:\n  level: loud\n"},
		{name: "bad port", content: "server:\n  port: 0\n"},
		{
			name:    "degenerate normalization range",
			content: "normalization:\n  德育:\n    min: 10\n    max: 10\n",
		},
		{
			name:    "unknown normalization field",
			content: "normalization:\n  平均分:\n    min: 0\n    max: 100\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
