package mapgen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleExactAtGridPoints(t *testing.T) {
	matrix := [][]float64{
		{0.0, 0.25, 0.5, 0.75},
		{0.1, 0.35, 0.6, 0.85},
		{0.2, 0.45, 0.7, 0.95},
	}
	rows, cols := len(matrix), len(matrix[0])

	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			u := float64(i) / float64(cols-1)
			v := float64(j) / float64(rows-1)
			t.Run(fmt.Sprintf("cell_%d_%d", i, j), func(t *testing.T) {
				assert.Equal(t, matrix[j][i], Sample(matrix, u, v))
			})
		}
	}
}

func TestSampleBilinearBlend(t *testing.T) {
	matrix := [][]float64{
		{0, 1},
		{2, 3},
	}

	assert.InDelta(t, 1.5, Sample(matrix, 0.5, 0.5), 1e-12, "center blends all four corners")
	assert.InDelta(t, 0.5, Sample(matrix, 0.5, 0), 1e-12, "top edge blends top corners only")
	assert.InDelta(t, 1.0, Sample(matrix, 0, 0.5), 1e-12, "left edge blends left corners only")
}

func TestSampleClampsOutOfRange(t *testing.T) {
	matrix := [][]float64{
		{0.0, 0.25, 0.5},
		{0.1, 0.35, 0.6},
	}

	assert.Equal(t, Sample(matrix, 0, 1), Sample(matrix, -5, 5))
	assert.Equal(t, matrix[1][0], Sample(matrix, -5, 5))
	assert.Equal(t, matrix[0][2], Sample(matrix, 99, -99))
}

func TestSampleDegenerateMatrices(t *testing.T) {
	require.Zero(t, Sample(nil, 0.5, 0.5))
	require.Zero(t, Sample([][]float64{}, 0.5, 0.5))
	require.Zero(t, Sample([][]float64{{}}, 0.5, 0.5))

	single := [][]float64{{0.42}}
	assert.Equal(t, 0.42, Sample(single, 0.7, 0.3), "1x1 matrix always returns its value")
}
