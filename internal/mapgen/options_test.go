package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationOptionsNormalization(t *testing.T) {
	tests := []struct {
		name     string
		seed     string
		width    int
		height   int
		seaLevel float64
		climate  string
		expected GenerationOptions
	}{
		{
			name:     "well formed options pass through unchanged",
			seed:     "ember-coast",
			width:    512,
			height:   256,
			seaLevel: 0.42,
			climate:  "arid",
			expected: GenerationOptions{Seed: "ember-coast", Width: 512, Height: 256, SeaLevel: 0.42, Climate: ClimateArid},
		},
		{
			name:     "blank seed defaults to sentinel",
			seed:     "   ",
			width:    128,
			height:   128,
			seaLevel: 0.5,
			climate:  "temperate",
			expected: GenerationOptions{Seed: DefaultSeed, Width: 128, Height: 128, SeaLevel: 0.5, Climate: ClimateTemperate},
		},
		{
			name:     "seed whitespace is trimmed",
			seed:     "  frosthold  ",
			width:    128,
			height:   128,
			seaLevel: 0.5,
			climate:  "cold",
			expected: GenerationOptions{Seed: "frosthold", Width: 128, Height: 128, SeaLevel: 0.5, Climate: ClimateCold},
		},
		{
			name:     "dimensions clamp to lower bound",
			seed:     "x",
			width:    1,
			height:   -300,
			seaLevel: 0.5,
			climate:  "temperate",
			expected: GenerationOptions{Seed: "x", Width: MinMapSize, Height: MinMapSize, SeaLevel: 0.5, Climate: ClimateTemperate},
		},
		{
			name:     "dimensions clamp to upper bound",
			seed:     "x",
			width:    100000,
			height:   8192,
			seaLevel: 0.5,
			climate:  "temperate",
			expected: GenerationOptions{Seed: "x", Width: MaxMapSize, Height: MaxMapSize, SeaLevel: 0.5, Climate: ClimateTemperate},
		},
		{
			name:     "sea level clamps into unit range",
			seed:     "x",
			width:    128,
			height:   128,
			seaLevel: 1.7,
			climate:  "temperate",
			expected: GenerationOptions{Seed: "x", Width: 128, Height: 128, SeaLevel: 1, Climate: ClimateTemperate},
		},
		{
			name:     "negative sea level clamps to zero",
			seed:     "x",
			width:    128,
			height:   128,
			seaLevel: -0.25,
			climate:  "temperate",
			expected: GenerationOptions{Seed: "x", Width: 128, Height: 128, SeaLevel: 0, Climate: ClimateTemperate},
		},
		{
			name:     "unknown climate normalizes to temperate",
			seed:     "x",
			width:    128,
			height:   128,
			seaLevel: 0.5,
			climate:  "tropical",
			expected: GenerationOptions{Seed: "x", Width: 128, Height: 128, SeaLevel: 0.5, Climate: ClimateTemperate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewGenerationOptions(tt.seed, tt.width, tt.height, tt.seaLevel, tt.climate)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestCacheKeyCanonical(t *testing.T) {
	base := NewGenerationOptions("alpha", 256, 256, 0.5, "temperate")

	t.Run("equivalent inputs share one key", func(t *testing.T) {
		same := NewGenerationOptions("  alpha ", 256, 256, 0.5, "bogus-preset")
		assert.Equal(t, base.CacheKey(), same.CacheKey())
	})

	t.Run("sea level rounds to key precision", func(t *testing.T) {
		a := NewGenerationOptions("alpha", 256, 256, 0.5000001, "temperate")
		b := NewGenerationOptions("alpha", 256, 256, 0.5000004, "temperate")
		assert.Equal(t, 0.5, a.SeaLevel)
		assert.Equal(t, a.SeaLevel, b.SeaLevel)
		assert.Equal(t, a.CacheKey(), b.CacheKey())
	})

	t.Run("every field participates", func(t *testing.T) {
		variants := []GenerationOptions{
			NewGenerationOptions("beta", 256, 256, 0.5, "temperate"),
			NewGenerationOptions("alpha", 512, 256, 0.5, "temperate"),
			NewGenerationOptions("alpha", 256, 512, 0.5, "temperate"),
			NewGenerationOptions("alpha", 256, 256, 0.6, "temperate"),
			NewGenerationOptions("alpha", 256, 256, 0.5, "cold"),
		}
		for _, v := range variants {
			assert.NotEqual(t, base.CacheKey(), v.CacheKey(), "options %+v", v)
		}
	})
}

func TestGridSize(t *testing.T) {
	opts := NewGenerationOptions("alpha", 256, 128, 0.5, "temperate")
	cellsX, cellsY := opts.GridSize()
	require.Equal(t, 64, cellsX)
	require.Equal(t, 32, cellsY)

	t.Run("stable across calls", func(t *testing.T) {
		againX, againY := opts.GridSize()
		assert.Equal(t, cellsX, againX)
		assert.Equal(t, cellsY, againY)
	})

	t.Run("clamped extremes stay positive", func(t *testing.T) {
		small := NewGenerationOptions("alpha", 0, 0, 0.5, "temperate")
		sx, sy := small.GridSize()
		assert.Equal(t, MinMapSize/4, sx)
		assert.Equal(t, MinMapSize/4, sy)
	})
}
