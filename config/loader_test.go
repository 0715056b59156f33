package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitlab/sitp-routing/config"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadAppConfig(t *testing.T) {
	path := writeTemp(t, `
server:
  listen: ":8080"
cost:
  heuristicMinPerKm: 1.5
  defaultCriterion: hops
`)
	require.NoError(t, config.LoadAppConfig(path))
	assert.Equal(t, ":8080", config.Config.Server.Listen)
	assert.Equal(t, 1.5, config.Config.Cost.HeuristicMinPerKm)
	assert.Equal(t, "hops", config.Config.Cost.DefaultCriterion)
	// untouched knobs keep their defaults
	assert.Equal(t, 1_000_000, config.Config.Cost.MaxVisitedStates)
}

func TestLoadAppConfigMissing(t *testing.T) {
	// an explicit path must exist
	assert.Error(t, config.LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml")))
}

func TestLoadAppConfigInvalid(t *testing.T) {
	assert.Error(t, config.LoadAppConfig(writeTemp(t, "cost:\n  defaultCriterion: fastest\n")))
	assert.Error(t, config.LoadAppConfig(writeTemp(t, "cost:\n  heuristicMinPerKm: -2\n")))
	assert.Error(t, config.LoadAppConfig(writeTemp(t, "not yaml: [\n")))
}

func TestDefaults(t *testing.T) {
	d := config.Defaults()
	assert.Equal(t, 2.0, d.Cost.HeuristicMinPerKm)
	assert.Equal(t, 1.0, d.Cost.HopTransferWeight)
	assert.Equal(t, "time", d.Cost.DefaultCriterion)
	assert.Empty(t, d.Server.Listen)
}
