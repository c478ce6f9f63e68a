// Package mesh provides the structured hexahedral mesh container used by
// the topography builder: node coordinate storage, element connectivity
// and boundary vertex sets.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidResolution = errors.New("mesh: node resolution must be at least 2 in every direction")
	ErrInvalidExtent     = errors.New("mesh: domain extent must be positive")
)

// Descriptor holds the derived dimensions of a structured mesh. It is
// computed once from the raster shape and the requested vertical
// discretization, and is immutable afterwards.
type Descriptor struct {
	Nx, Ny, Nz int // Node counts per direction

	XDim, YDim, ZDim float64 // Physical extents

	MinCoord, MaxCoord [3]float64 // Domain bounding box
}

// NewDescriptor derives mesh dimensions from node counts, horizontal cell
// spacing and total depth. Spacing signs are ignored; the domain is
// [0,XDim] x [0,YDim] x [-ZDim,0].
func NewDescriptor(nx, ny, nz int, dx, dy, zdim float64) (Descriptor, error) {
	if nx < 2 || ny < 2 || nz < 2 {
		return Descriptor{}, fmt.Errorf("%w: got %dx%dx%d", ErrInvalidResolution, nx, ny, nz)
	}
	if dx == 0 || dy == 0 || zdim <= 0 {
		return Descriptor{}, fmt.Errorf("%w: dx=%g, dy=%g, zdim=%g", ErrInvalidExtent, dx, dy, zdim)
	}
	xdim := float64(nx) * math.Abs(dx)
	ydim := float64(ny) * math.Abs(dy)
	return Descriptor{
		Nx:       nx,
		Ny:       ny,
		Nz:       nz,
		XDim:     xdim,
		YDim:     ydim,
		ZDim:     zdim,
		MinCoord: [3]float64{0, 0, -zdim},
		MaxCoord: [3]float64{xdim, ydim, 0},
	}, nil
}

// NumNodes returns the total node count.
func (d Descriptor) NumNodes() int { return d.Nx * d.Ny * d.Nz }

// NumColumns returns the number of vertical node columns.
func (d Descriptor) NumColumns() int { return d.Nx * d.Ny }

// ElementRes returns the element counts per direction.
func (d Descriptor) ElementRes() (ex, ey, ez int) {
	return d.Nx - 1, d.Ny - 1, d.Nz - 1
}

// NumElements returns the total hexahedral element count.
func (d Descriptor) NumElements() int {
	return (d.Nx - 1) * (d.Ny - 1) * (d.Nz - 1)
}

// ElementType returns the element geometry of the structured mesh.
func (d Descriptor) ElementType() GeometryType { return Hex }

// NodeIndex maps a logical (i,j,k) triple to the flat node index. Layers
// are the slowest axis, then rows, then columns: k*Nx*Ny + j*Nx + i.
// k behaves like depth: k=0 is the floor, k=Nz-1 the surface.
func (d Descriptor) NodeIndex(i, j, k int) int {
	return k*d.Nx*d.Ny + j*d.Nx + i
}

// ColumnIndex maps a horizontal (i,j) pair to its column index j*Nx + i,
// matching the raster's row-major value layout.
func (d Descriptor) ColumnIndex(i, j int) int { return j*d.Nx + i }

func (d Descriptor) String() string {
	return fmt.Sprintf("structured mesh %dx%dx%d nodes (%d %s elements), domain [%g,%g]x[%g,%g]x[%g,%g]",
		d.Nx, d.Ny, d.Nz, d.NumElements(), d.ElementType(),
		d.MinCoord[0], d.MaxCoord[0], d.MinCoord[1], d.MaxCoord[1], d.MinCoord[2], d.MaxCoord[2])
}
