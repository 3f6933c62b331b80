package mapgen

// River source thresholds. Sources sit on wet high ground; the strict
// local-maximum check keeps them out of basins so the descent below always
// has somewhere to go.
const (
	riverSourceMinHeight   = 0.72
	riverSourceMinMoisture = 0.55
)

// TraceRivers derives the boolean river grid from the synthesized fields by
// steepest-descent tracing: each qualifying source walks downhill through
// its lowest 4-neighbor until it reaches water, a cell with no lower
// neighbor, or a cell already carrying a river. Only land cells are ever
// marked, so river implies land everywhere.
func TraceRivers(height, moisture [][]float64, seaLevel float64) [][]bool {
	cellsY := len(height)
	cellsX := 0
	if cellsY > 0 {
		cellsX = len(height[0])
	}

	river := make([][]bool, cellsY)
	for y := range river {
		river[y] = make([]bool, cellsX)
	}

	for y := 0; y < cellsY; y++ {
		for x := 0; x < cellsX; x++ {
			if isRiverSource(height, moisture, seaLevel, x, y) {
				traceDownhill(height, river, seaLevel, x, y)
			}
		}
	}
	return river
}

func isRiverSource(height, moisture [][]float64, seaLevel float64, x, y int) bool {
	h := height[y][x]
	if !IsLand(h, seaLevel) || h < riverSourceMinHeight || moisture[y][x] < riverSourceMinMoisture {
		return false
	}
	// Strict local maximum of height among in-bounds 4-neighbors.
	for _, n := range neighbors4(x, y, len(height[0]), len(height)) {
		if height[n[1]][n[0]] >= h {
			return false
		}
	}
	return true
}

func traceDownhill(height [][]float64, river [][]bool, seaLevel float64, x, y int) {
	cellsX, cellsY := len(height[0]), len(height)
	for {
		if !IsLand(height[y][x], seaLevel) || river[y][x] {
			return
		}
		river[y][x] = true

		nextX, nextY := x, y
		lowest := height[y][x]
		for _, n := range neighbors4(x, y, cellsX, cellsY) {
			if h := height[n[1]][n[0]]; h < lowest {
				lowest = h
				nextX, nextY = n[0], n[1]
			}
		}
		if nextX == x && nextY == y {
			return // local minimum, river terminates
		}
		x, y = nextX, nextY
	}
}

func neighbors4(x, y, cellsX, cellsY int) [][2]int {
	candidates := [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
	result := make([][2]int, 0, 4)
	for _, c := range candidates {
		if c[0] >= 0 && c[0] < cellsX && c[1] >= 0 && c[1] < cellsY {
			result = append(result, c)
		}
	}
	return result
}
