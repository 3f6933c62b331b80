package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBiome(t *testing.T) {
	tests := []struct {
		name        string
		altitude    float64
		seaLevel    float64
		moisture    float64
		temperature float64
		expected    BiomeKind
	}{
		{
			name:     "below sea level is ocean",
			altitude: 0.50, seaLevel: 0.60, moisture: 0.5, temperature: 0.5,
			expected: BiomeOcean,
		},
		{
			name:     "just above sea level inside the beach band",
			altitude: 0.615, seaLevel: 0.60, moisture: 0.5, temperature: 0.5,
			expected: BiomeBeach,
		},
		{
			name:     "high cold peak is snow",
			altitude: 0.95, seaLevel: 0.1, moisture: 0.5, temperature: 0.20,
			expected: BiomeSnow,
		},
		{
			name:     "high warm peak is rock",
			altitude: 0.95, seaLevel: 0.1, moisture: 0.5, temperature: 0.50,
			expected: BiomeRock,
		},
		{
			name:     "deep frost is snow regardless of moisture",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.9, temperature: 0.10,
			expected: BiomeSnow,
		},
		{
			name:     "cold and wet is taiga",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.60, temperature: 0.25,
			expected: BiomeTaiga,
		},
		{
			name:     "cold and dry is tundra",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.30, temperature: 0.25,
			expected: BiomeTundra,
		},
		{
			name:     "dry is desert",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.10, temperature: 0.50,
			expected: BiomeDesert,
		},
		{
			name:     "semi-arid and hot is savanna",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.25, temperature: 0.70,
			expected: BiomeSavanna,
		},
		{
			name:     "semi-arid and mild is grassland",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.25, temperature: 0.40,
			expected: BiomeGrassland,
		},
		{
			name:     "moderate moisture is forest",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.50, temperature: 0.50,
			expected: BiomeForest,
		},
		{
			name:     "wet and warm is rainforest",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.80, temperature: 0.50,
			expected: BiomeRainforest,
		},
		{
			name:     "wet but cool falls back to forest",
			altitude: 0.50, seaLevel: 0.1, moisture: 0.80, temperature: 0.40,
			expected: BiomeForest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyBiome(tt.altitude, tt.seaLevel, tt.moisture, tt.temperature)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsLand(t *testing.T) {
	assert.False(t, IsLand(0.50, 0.60))
	assert.False(t, IsLand(0.60, 0.60), "exactly at sea level is water")
	assert.True(t, IsLand(0.601, 0.60))
}

func TestBiomeKindString(t *testing.T) {
	assert.Equal(t, "rainforest", BiomeRainforest.String())
	assert.Equal(t, "ocean", BiomeOcean.String())
	assert.Equal(t, "biome(250)", BiomeKind(250).String())
}
