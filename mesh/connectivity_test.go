package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexEToVSingleElement(t *testing.T) {
	d, err := NewDescriptor(2, 2, 2, 1, 1, 10)
	require.NoError(t, err)

	etov := HexEToV(d)
	require.Len(t, etov, 1)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 5, 7, 6}, etov[0])

	assert.Equal(t, Hex, d.ElementType())
	assert.Equal(t, 8, Hex.NodesPerElement())
	assert.Equal(t, "hexahedron", Hex.String())
}

func TestHexEToV(t *testing.T) {
	d, err := NewDescriptor(3, 3, 4, 1, 1, 10)
	require.NoError(t, err)

	etov := HexEToV(d)
	require.Len(t, etov, d.NumElements())

	for _, elem := range etov {
		require.Len(t, elem, 8)
		// Top face nodes sit exactly one layer above the bottom face.
		stride := d.Nx * d.Ny
		for c := 0; c < 4; c++ {
			assert.Equal(t, elem[c]+stride, elem[c+4])
		}
		for _, n := range elem {
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, d.NumNodes())
		}
	}
}

func TestVertexSets(t *testing.T) {
	d, err := NewDescriptor(3, 4, 5, 1, 1, 10)
	require.NoError(t, err)

	assert.Len(t, MinISet(d), d.Ny*d.Nz)
	assert.Len(t, MaxISet(d), d.Ny*d.Nz)
	assert.Len(t, MinJSet(d), d.Nx*d.Nz)
	assert.Len(t, MaxJSet(d), d.Nx*d.Nz)
	assert.Len(t, MinKSet(d), d.Nx*d.Ny)
	assert.Len(t, MaxKSet(d), d.Nx*d.Ny)

	surface := MaxKSet(d)
	assert.True(t, surface.Contains(d.NodeIndex(1, 2, d.Nz-1)))
	assert.False(t, surface.Contains(d.NodeIndex(1, 2, 0)))

	floor := MinKSet(d)
	for _, n := range floor {
		assert.Less(t, n, d.Nx*d.Ny)
	}

	// Interior nodes belong to no wall.
	walls := AllWalls(d)
	interior := 0
	for k := 0; k < d.Nz; k++ {
		for j := 0; j < d.Ny; j++ {
			for i := 0; i < d.Nx; i++ {
				if !walls.Contains(d.NodeIndex(i, j, k)) {
					interior++
				}
			}
		}
	}
	assert.Equal(t, (d.Nx-2)*(d.Ny-2)*(d.Nz-2), interior)
}
