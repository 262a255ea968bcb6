package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigurationFile(t *testing.T) {
	raw := `{
		"Seed": 42,
		"Variant": "simulated",
		"Rounds": 30,
		"RoundDelayMilli": 150,
		"HistoryLength": 20,
		"OutputPathPrefix": "data/out/warmsim_",
		"EnablePlotting": true
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg := ReadConfigurationFile(path)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "simulated", cfg.Variant)
	assert.Equal(t, 30, cfg.Rounds)
	assert.Equal(t, 150, cfg.RoundDelayMilli)
	assert.Equal(t, 20, cfg.HistoryLength)
	assert.Equal(t, "data/out/warmsim_", cfg.OutputPathPrefix)
	assert.True(t, cfg.EnablePlotting)
}
