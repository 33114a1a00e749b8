package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, 70, cfg.OneMax.Length)
	assert.Equal(t, 2, cfg.BinPack.TournamentSize)
	assert.Equal(t, 0.8, cfg.BinPack.TournamentWinP)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 7
run:
  generations: 50
  elitism: 0.25
  runs: 3
onemax:
  length: 16
logging:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.Run.Generations)
	assert.Equal(t, 0.25, cfg.Run.Elitism)
	assert.Equal(t, 3, cfg.Run.Runs)
	assert.Equal(t, 100, cfg.Run.Population, "unset fields keep their defaults")
	assert.Equal(t, 16, cfg.OneMax.Length)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"elitism above one", "run:\n  elitism: 1.5\n", "Elitism"},
		{"single bin", "binpack:\n  bins: 1\n", "Bins"},
		{"unknown level", "logging:\n  level: loud\n", "Level"},
		{"bad metrics address", "metrics:\n  addr: nowhere\n", "Addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "run: [not, a, map]\n"))
	assert.Error(t, err)
}
