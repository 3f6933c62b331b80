package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapConfigDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 512, cfg.Map.PreviewWidth)
	assert.Equal(t, 512, cfg.Map.PreviewHeight)
	assert.Equal(t, 0.5, cfg.Map.DefaultSeaLevel)
	assert.Equal(t, "temperate", cfg.Map.DefaultClimate)
}

func TestMapConfigFromEnv(t *testing.T) {
	t.Setenv("MAP_PREVIEW_WIDTH", "256")
	t.Setenv("MAP_PREVIEW_HEIGHT", "192")
	t.Setenv("MAP_DEFAULT_SEA_LEVEL", "0.62")
	t.Setenv("MAP_DEFAULT_CLIMATE", "cold")

	cfg := Load()

	assert.Equal(t, 256, cfg.Map.PreviewWidth)
	assert.Equal(t, 192, cfg.Map.PreviewHeight)
	assert.Equal(t, 0.62, cfg.Map.DefaultSeaLevel)
	assert.Equal(t, "cold", cfg.Map.DefaultClimate)
}

func TestMapConfigIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("MAP_PREVIEW_WIDTH", "not-a-number")
	t.Setenv("MAP_DEFAULT_SEA_LEVEL", "deep")

	cfg := Load()

	assert.Equal(t, 512, cfg.Map.PreviewWidth)
	assert.Equal(t, 0.5, cfg.Map.DefaultSeaLevel)
}
