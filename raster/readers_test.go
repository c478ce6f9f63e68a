package raster

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fp, []byte(content), 0644))
	return fp
}

func TestReadXYZ(t *testing.T) {
	fp := writeTemp(t, "dem.xyz", `# test dem
500 2000 1.5
510 2000 2.5
520 2000 3.5
500 2010 4.5
510 2010 5.5
520 2010 6.5
`)

	g, err := ReadXYZ(fp)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nx)
	assert.Equal(t, 2, g.Ny)
	assert.Equal(t, 10.0, g.Dx)
	assert.Equal(t, 10.0, g.Dy)
	assert.Equal(t, 500.0, g.OriginX)
	assert.Equal(t, 2000.0, g.OriginY)
	assert.Equal(t, 2.5, g.At(1, 0))
	assert.Equal(t, 6.5, g.At(2, 1))
	assert.NoError(t, g.Validate())
}

func TestReadXYZNorthToSouth(t *testing.T) {
	// Rows written with decreasing y keep a negative Dy.
	fp := writeTemp(t, "dem.xyz", `0 10 1
1 10 2
0 0 3
1 0 4
`)

	g, err := ReadXYZ(fp)
	require.NoError(t, err)
	assert.Equal(t, -10.0, g.Dy)
	assert.Equal(t, 1.0, g.At(0, 0))
	assert.Equal(t, 4.0, g.At(1, 1))
}

func TestReadXYZIrregular(t *testing.T) {
	fp := writeTemp(t, "dem.xyz", `0 0 1
1 0 2
0 1 3
1.5 1 4
`)

	_, err := ReadXYZ(fp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "off the regular grid")
}

func TestReadXYZMalformed(t *testing.T) {
	fp := writeTemp(t, "dem.xyz", "0 0\n1 0 2\n")
	_, err := ReadXYZ(fp)
	require.Error(t, err)

	fp = writeTemp(t, "dem2.xyz", "0 0 a\n1 0 2\n")
	_, err = ReadXYZ(fp)
	require.Error(t, err)

	fp = writeTemp(t, "dem3.xyz", "0 0 1\n1 0 2\n")
	_, err = ReadXYZ(fp)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestReadEsriASCII(t *testing.T) {
	fp := writeTemp(t, "dem.asc", `ncols 3
nrows 2
xllcorner 100
yllcorner 200
cellsize 30
NODATA_value -9999
7 8 9
1 2 3
`)

	g, err := ReadEsriASCII(fp)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nx)
	assert.Equal(t, 2, g.Ny)
	assert.Equal(t, 30.0, g.Dx)
	assert.Equal(t, 100.0, g.OriginX)
	assert.Equal(t, 200.0, g.OriginY)

	// File rows are north to south: the last file row is grid row 0.
	assert.Equal(t, 1.0, g.At(0, 0))
	assert.Equal(t, 3.0, g.At(2, 0))
	assert.Equal(t, 7.0, g.At(0, 1))
	assert.NoError(t, g.Validate())
}

func TestReadEsriASCIINodata(t *testing.T) {
	fp := writeTemp(t, "dem.asc", `ncols 2
nrows 2
xllcorner 0
yllcorner 0
cellsize 10
NODATA_value -9999
1 -9999
3 4
`)

	g, err := ReadEsriASCII(fp)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(g.At(1, 1)))
	assert.ErrorIs(t, g.Validate(), ErrNonFiniteElevation)
}

func TestReadEsriASCIIBadHeader(t *testing.T) {
	fp := writeTemp(t, "dem.asc", "ncols 2\nnrows 2\n1 2\n3 4\n")
	_, err := ReadEsriASCII(fp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")

	fp = writeTemp(t, "dem2.asc", `ncols 2
nrows 3
xllcorner 0
yllcorner 0
cellsize 10
1 2
3 4
`)
	_, err = ReadEsriASCII(fp)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
