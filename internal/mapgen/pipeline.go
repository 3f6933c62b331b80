package mapgen

import (
	"time"

	"github.com/Loreweave/api/internal/logging"
)

// Generate runs the full synthesis pipeline for one option set: field
// synthesis, climate remap, biome classification and river tracing. The
// result is fully populated and internally consistent, or not produced at
// all; there are no partial layers.
func Generate(opts GenerationOptions) *GeneratedMapLayers {
	opts = opts.normalized()
	logging.WithSeed(opts.Seed).Debug("Starting map generation", "climate", opts.Climate)

	start := time.Now()
	cellsX, cellsY := opts.GridSize()
	height, moisture, temperature := Synthesize(opts.Seed, cellsX, cellsY)
	applyClimate(moisture, temperature, opts.Climate)

	isLand := make([][]bool, cellsY)
	biome := make([][]BiomeKind, cellsY)
	for y := 0; y < cellsY; y++ {
		isLand[y] = make([]bool, cellsX)
		biome[y] = make([]BiomeKind, cellsX)
		for x := 0; x < cellsX; x++ {
			isLand[y][x] = IsLand(height[y][x], opts.SeaLevel)
			biome[y][x] = ClassifyBiome(height[y][x], opts.SeaLevel, moisture[y][x], temperature[y][x])
		}
	}

	river := TraceRivers(height, moisture, opts.SeaLevel)

	logging.WithDuration("generate_map", time.Since(start)).Debug("Map generation completed",
		"seed", opts.Seed,
		"cells_x", cellsX,
		"cells_y", cellsY,
		"climate", opts.Climate,
	)

	return &GeneratedMapLayers{
		CellsX:      cellsX,
		CellsY:      cellsY,
		SeaLevel:    opts.SeaLevel,
		Height:      height,
		Moisture:    moisture,
		Temperature: temperature,
		IsLand:      isLand,
		Biome:       biome,
		River:       river,
	}
}

// applyClimate remaps the moisture and temperature fields in place for the
// chosen preset. The remap is deterministic and the preset is part of the
// cache key, so remapped layers cache correctly.
func applyClimate(moisture, temperature [][]float64, climate ClimatePreset) {
	switch climate {
	case ClimateArid:
		for y := range moisture {
			for x := range moisture[y] {
				moisture[y][x] = clampFloat(moisture[y][x]*0.55, 0, 1)
				temperature[y][x] = clampFloat(temperature[y][x]*0.8+0.2, 0, 1)
			}
		}
	case ClimateCold:
		for y := range temperature {
			for x := range temperature[y] {
				temperature[y][x] = clampFloat(temperature[y][x]*0.55, 0, 1)
			}
		}
	case ClimateTemperate:
		// identity
	}
}
