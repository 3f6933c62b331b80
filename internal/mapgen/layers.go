package mapgen

import "fmt"

// BiomeKind is the discrete biome assigned to a grid cell.
type BiomeKind uint8

const (
	BiomeOcean BiomeKind = iota
	BiomeBeach
	BiomeSnow
	BiomeRock
	BiomeTaiga
	BiomeTundra
	BiomeDesert
	BiomeSavanna
	BiomeGrassland
	BiomeForest
	BiomeRainforest
)

var biomeNames = map[BiomeKind]string{
	BiomeOcean:      "ocean",
	BiomeBeach:      "beach",
	BiomeSnow:       "snow",
	BiomeRock:       "rock",
	BiomeTaiga:      "taiga",
	BiomeTundra:     "tundra",
	BiomeDesert:     "desert",
	BiomeSavanna:    "savanna",
	BiomeGrassland:  "grassland",
	BiomeForest:     "forest",
	BiomeRainforest: "rainforest",
}

func (b BiomeKind) String() string {
	if name, ok := biomeNames[b]; ok {
		return name
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// MarshalJSON encodes the biome as its name so API consumers see
// "forest" rather than an opaque ordinal.
func (b BiomeKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// GeneratedMapLayers is the full result of one map generation. All grids
// share the same cellsY x cellsX shape and are immutable once produced.
type GeneratedMapLayers struct {
	CellsX      int           `json:"cells_x"`
	CellsY      int           `json:"cells_y"`
	SeaLevel    float64       `json:"sea_level"`
	Height      [][]float64   `json:"height"`
	Moisture    [][]float64   `json:"moisture"`
	Temperature [][]float64   `json:"temperature"`
	IsLand      [][]bool      `json:"is_land"`
	Biome       [][]BiomeKind `json:"biome"`
	River       [][]bool      `json:"river"`
}
