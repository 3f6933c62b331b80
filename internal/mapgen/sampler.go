package mapgen

import "math"

// Sample bilinearly interpolates a matrix at normalized coordinates (u, v).
// Inputs are clamped into [0,1] before use, edges clamp rather than wrap,
// and sampling at an exact grid coordinate returns the stored value with no
// interpolation error. The renderer uses this to query a field at arbitrary
// output resolution.
func Sample(matrix [][]float64, u, v float64) float64 {
	rows := len(matrix)
	if rows == 0 {
		return 0
	}
	cols := len(matrix[0])
	if cols == 0 {
		return 0
	}

	u = clampFloat(u, 0, 1)
	v = clampFloat(v, 0, 1)

	x := snapToGrid(u * float64(cols-1))
	y := snapToGrid(v * float64(rows-1))

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := minInt(x0+1, cols-1)
	y1 := minInt(y0+1, rows-1)

	tx := x - float64(x0)
	ty := y - float64(y0)

	top := matrix[y0][x0]*(1-tx) + matrix[y0][x1]*tx
	bottom := matrix[y1][x0]*(1-tx) + matrix[y1][x1]*tx
	return top*(1-ty) + bottom*ty
}

// snapToGrid collapses round-off from the u*(cols-1) mapping so that exact
// grid coordinates land on integers and return stored values untouched.
func snapToGrid(x float64) float64 {
	if r := math.Round(x); math.Abs(x-r) < 1e-9 {
		return r
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
