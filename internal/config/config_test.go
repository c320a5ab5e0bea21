package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigMatchesEmbeddedDefaults(t *testing.T) {
	cfg, err := DefaultConfig()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 20, cfg.MapRadius)
	assert.Equal(t, 40, cfg.Population.Herbivores)
	assert.Equal(t, 500, cfg.Turns)
}

func TestLoadMergesUserOverridesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("seed: 99\npopulation:\n  herbivores: 5\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 5, cfg.Population.Herbivores)
	assert.Equal(t, 500, cfg.Turns)
}

func TestToWorldParamsCopiesFields(t *testing.T) {
	c := ClimateConfig{BaseEquatorC: 30, BasePoleC: -15, AltitudeLapse: 6, MaxPrecipMM: 450}
	p := c.ToWorldParams()
	assert.Equal(t, 30.0, p.BaseEquatorC)
	assert.Equal(t, -15.0, p.BasePoleC)
}
