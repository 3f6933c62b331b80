package mapgen

import (
	"hash/fnv"

	"github.com/aquilax/go-perlin"
)

// Noise shaping constants. Alpha/beta/n follow the usual terrain-friendly
// Perlin parameters; the two frequencies blend a broad landmass shape with
// finer local variation.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3

	broadFrequency  = 3.0
	detailFrequency = 9.0

	broadWeight  = 0.7
	detailWeight = 0.3
)

// Per-field seed offsets so the three fields are decorrelated while still
// derived from the one caller-supplied seed.
const (
	heightSeedOffset = iota
	moistureSeedOffset
	temperatureSeedOffset
)

// Synthesize deterministically produces the height, moisture and temperature
// fields for a cellsY x cellsX grid. Identical (seed, cellsX, cellsY) inputs
// yield bit-identical matrices; every value lies in [0,1].
func Synthesize(seed string, cellsX, cellsY int) (height, moisture, temperature [][]float64) {
	base := hashSeed(seed)
	height = synthesizeField(base+heightSeedOffset, cellsX, cellsY)
	moisture = synthesizeField(base+moistureSeedOffset, cellsX, cellsY)
	temperature = synthesizeField(base+temperatureSeedOffset, cellsX, cellsY)
	return height, moisture, temperature
}

// synthesizeField renders one field by blending two Perlin octaves sampled
// over normalized grid coordinates, then remapping from [-1,1] into [0,1].
func synthesizeField(seed int64, cellsX, cellsY int) [][]float64 {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	field := make([][]float64, cellsY)
	for y := 0; y < cellsY; y++ {
		row := make([]float64, cellsX)
		ny := float64(y) / float64(cellsY)
		for x := 0; x < cellsX; x++ {
			nx := float64(x) / float64(cellsX)

			broad := noise.Noise2D(nx*broadFrequency, ny*broadFrequency)
			detail := noise.Noise2D(nx*detailFrequency, ny*detailFrequency)
			combined := broad*broadWeight + detail*detailWeight

			row[x] = clampFloat((combined+1)/2, 0, 1)
		}
		field[y] = row
	}
	return field
}

// hashSeed folds an arbitrary seed string into the int64 the Perlin source
// expects, via FNV-1a.
func hashSeed(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}
