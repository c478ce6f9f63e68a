package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptor(t *testing.T) {
	d, err := NewDescriptor(4, 3, 5, 10, -10, 200)
	require.NoError(t, err)

	assert.Equal(t, 40.0, d.XDim)
	assert.Equal(t, 30.0, d.YDim)
	assert.Equal(t, 200.0, d.ZDim)
	assert.Equal(t, [3]float64{0, 0, -200}, d.MinCoord)
	assert.Equal(t, [3]float64{40, 30, 0}, d.MaxCoord)
	assert.Equal(t, 60, d.NumNodes())
	assert.Equal(t, 12, d.NumColumns())
	assert.Equal(t, 24, d.NumElements())

	ex, ey, ez := d.ElementRes()
	assert.Equal(t, 3, ex)
	assert.Equal(t, 2, ey)
	assert.Equal(t, 4, ez)
}

func TestNewDescriptorInvalid(t *testing.T) {
	_, err := NewDescriptor(1, 3, 5, 10, 10, 200)
	assert.ErrorIs(t, err, ErrInvalidResolution)

	_, err = NewDescriptor(3, 3, 1, 10, 10, 200)
	assert.ErrorIs(t, err, ErrInvalidResolution)

	_, err = NewDescriptor(3, 3, 5, 0, 10, 200)
	assert.ErrorIs(t, err, ErrInvalidExtent)

	_, err = NewDescriptor(3, 3, 5, 10, 10, -1)
	assert.ErrorIs(t, err, ErrInvalidExtent)
}

func TestNodeIndex(t *testing.T) {
	d, err := NewDescriptor(3, 2, 4, 1, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, d.NodeIndex(0, 0, 0))
	assert.Equal(t, 2, d.NodeIndex(2, 0, 0))
	assert.Equal(t, 3, d.NodeIndex(0, 1, 0))
	assert.Equal(t, 6, d.NodeIndex(0, 0, 1))
	assert.Equal(t, d.NumNodes()-1, d.NodeIndex(2, 1, 3))

	// Every (i,j,k) maps to a distinct flat index.
	seen := make(map[int]bool)
	for k := 0; k < d.Nz; k++ {
		for j := 0; j < d.Ny; j++ {
			for i := 0; i < d.Nx; i++ {
				n := d.NodeIndex(i, j, k)
				assert.False(t, seen[n])
				seen[n] = true
			}
		}
	}
	assert.Len(t, seen, d.NumNodes())
}
