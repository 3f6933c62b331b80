package mapgen

// beachBand is the altitude band above sea level classified as beach.
const beachBand = 0.018

// ClassifyBiome maps one cell's altitude, moisture and temperature to a
// discrete biome. The branches are ordered by priority; the first match
// wins, and the thresholds are load-bearing for rendering consistency.
func ClassifyBiome(altitude, seaLevel, moisture, temperature float64) BiomeKind {
	switch {
	case altitude <= seaLevel:
		return BiomeOcean
	case altitude <= seaLevel+beachBand:
		return BiomeBeach
	case altitude > 0.9:
		if temperature < 0.28 {
			return BiomeSnow
		}
		return BiomeRock
	case temperature < 0.16:
		return BiomeSnow
	case temperature < 0.30:
		if moisture > 0.42 {
			return BiomeTaiga
		}
		return BiomeTundra
	case moisture < 0.17:
		return BiomeDesert
	case moisture < 0.34:
		if temperature > 0.58 {
			return BiomeSavanna
		}
		return BiomeGrassland
	case moisture < 0.66:
		return BiomeForest
	default:
		if temperature > 0.45 {
			return BiomeRainforest
		}
		return BiomeForest
	}
}

// IsLand reports whether a cell of the given altitude sits above sea level.
func IsLand(altitude, seaLevel float64) bool {
	return altitude > seaLevel
}
