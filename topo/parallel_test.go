package topo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/bollig/topomesh/raster"
)

func hillGrid(t *testing.T, nx, ny int) *raster.Grid {
	t.Helper()
	g, err := raster.Synthetic(nx, ny, 5, 5, func(x, y float64) float64 {
		return 80 * math.Exp(-((x-100)*(x-100)+(y-75)*(y-75))/5000)
	})
	require.NoError(t, err)
	return g
}

func TestBuildParallelMatchesSerial(t *testing.T) {
	g := hillGrid(t, 41, 31)

	serial, err := Build(g, 9, 250)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 7} {
		parallel, err := BuildParallel(g, 9, 250, workers, nil)
		require.NoError(t, err)
		assert.Equal(t, serial.X, parallel.X)
		assert.Equal(t, serial.Y, parallel.Y)
		assert.True(t, mat.Equal(serial.Z, parallel.Z), "workers=%d", workers)
	}
}

func TestBuildParallelProgress(t *testing.T) {
	g := hillGrid(t, 20, 15)

	var last, calls int
	_, err := BuildParallel(g, 4, 100, 3, func(done, total int) {
		calls++
		assert.Equal(t, g.Nx*g.Ny, total)
		if done > last {
			last = done
		}
	})
	require.NoError(t, err)
	assert.Greater(t, calls, 0)
	assert.Equal(t, g.Nx*g.Ny, last)
}

func TestBuildParallelValidation(t *testing.T) {
	g := hillGrid(t, 10, 10)
	_, err := BuildParallel(g, 1, 100, 4, nil)
	assert.ErrorIs(t, err, ErrInvalidLayerCount)
}
