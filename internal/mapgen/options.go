package mapgen

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultSeed is used when the caller supplies an empty or blank seed.
	DefaultSeed = "loreweave"

	// MinMapSize and MaxMapSize bound the requested map dimensions in pixels.
	MinMapSize = 64
	MaxMapSize = 4096

	// gridDivisor maps requested pixel dimensions to grid cells. With the
	// size bounds above this keeps the grid in [16, 1024] cells per axis.
	gridDivisor = 4
)

// ClimatePreset selects a deterministic remap of the moisture and
// temperature fields before biome classification.
type ClimatePreset string

const (
	ClimateTemperate ClimatePreset = "temperate"
	ClimateArid      ClimatePreset = "arid"
	ClimateCold      ClimatePreset = "cold"
)

// GenerationOptions is the immutable set of parameters for one map
// generation. Construct it with NewGenerationOptions so every field is
// normalized; two option values are equivalent iff their CacheKey matches.
type GenerationOptions struct {
	Seed     string        `json:"seed"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	SeaLevel float64       `json:"sea_level"`
	Climate  ClimatePreset `json:"climate"`
}

// NewGenerationOptions builds a normalized option set. Out-of-range or
// unrecognized inputs are clamped and defaulted, never rejected.
func NewGenerationOptions(seed string, width, height int, seaLevel float64, climate string) GenerationOptions {
	return GenerationOptions{
		Seed:     seed,
		Width:    width,
		Height:   height,
		SeaLevel: seaLevel,
		Climate:  ClimatePreset(climate),
	}.normalized()
}

func (o GenerationOptions) normalized() GenerationOptions {
	o.Seed = strings.TrimSpace(o.Seed)
	if o.Seed == "" {
		o.Seed = DefaultSeed
	}
	o.Width = clampInt(o.Width, MinMapSize, MaxMapSize)
	o.Height = clampInt(o.Height, MinMapSize, MaxMapSize)
	// Round to the cache key's precision so sea levels that format to the
	// same key also generate from the same value.
	o.SeaLevel = math.Round(clampFloat(o.SeaLevel, 0, 1)*1e6) / 1e6
	switch o.Climate {
	case ClimateArid, ClimateCold:
	default:
		o.Climate = ClimateTemperate
	}
	return o
}

// CacheKey returns the canonical key for this option set. Every field
// participates, so equal keys imply equivalent generation inputs.
func (o GenerationOptions) CacheKey() string {
	return fmt.Sprintf("%s|%dx%d|%.6f|%s", o.Seed, o.Width, o.Height, o.SeaLevel, o.Climate)
}

// GridSize maps the requested pixel dimensions to the generation grid
// resolution. The mapping is fixed: changing it would invalidate every
// cached result and recorded test fixture.
func (o GenerationOptions) GridSize() (cellsX, cellsY int) {
	return o.Width / gridDivisor, o.Height / gridDivisor
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
