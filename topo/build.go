// Package topo builds deformed structured-mesh coordinate fields from
// elevation rasters: the top node layer follows the terrain and every
// interior layer is redistributed per column so the element stack stays
// strictly layered.
package topo

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bollig/topomesh/mesh"
	"github.com/bollig/topomesh/raster"
)

var (
	ErrInvalidLayerCount   = errors.New("topo: at least 2 vertical layers required")
	ErrInvalidFloorDepth   = errors.New("topo: floor depth must be positive")
	ErrElevationBelowFloor = errors.New("topo: elevation at or below mesh floor")
)

// Progress is called after batches of columns finish redistribution.
// Calls are serialized, even under BuildParallel.
type Progress func(done, total int)

// Build constructs the coordinate field of a structured hexahedral mesh
// whose top layer matches g and whose floor sits at z = -floorDepth.
//
// The build runs in two phases. First a flat reference mesh covering
// [0,XDim] x [0,YDim] x [-floorDepth,0] is allocated and the surface layer
// z at node (i,j,Nz-1) is overwritten with g.Z[j*Nx+i] (raster row j is
// mesh j, raster column i is mesh i). Second, each column's Nz z-values
// are replaced with an even spacing from -floorDepth up to the column's
// surface elevation, endpoints included. Phase one alone leaves interior
// layers at reference spacing, which makes surface elements arbitrarily
// thin and lets low terrain drop the surface node below untouched interior
// nodes; the redistribution restores strict per-column monotonicity.
//
// All inputs are validated before any allocation; g is not mutated.
func Build(g *raster.Grid, nz int, floorDepth float64) (*mesh.CoordinateField, error) {
	d, err := prepare(g, nz, floorDepth)
	if err != nil {
		return nil, err
	}

	cf := mesh.NewCoordinateField(d)
	deformColumns(cf, g, 0, d.NumColumns())
	return cf, nil
}

// prepare validates the build inputs and derives the mesh descriptor.
func prepare(g *raster.Grid, nz int, floorDepth float64) (mesh.Descriptor, error) {
	if err := g.Validate(); err != nil {
		return mesh.Descriptor{}, err
	}
	if nz < 2 {
		return mesh.Descriptor{}, fmt.Errorf("%w: nz=%d", ErrInvalidLayerCount, nz)
	}
	if floorDepth <= 0 || math.IsNaN(floorDepth) || math.IsInf(floorDepth, 0) {
		return mesh.Descriptor{}, fmt.Errorf("%w: floorDepth=%g", ErrInvalidFloorDepth, floorDepth)
	}
	// Terrain reaching the floor would invert the column ordering; refuse
	// rather than clamp so the floor stays the deepest point domain-wide.
	for n, v := range g.Z {
		if v <= -floorDepth {
			return mesh.Descriptor{}, fmt.Errorf("%w: elevation %g at column %d, row %d with floor depth %g",
				ErrElevationBelowFloor, v, n%g.Nx, n/g.Nx, floorDepth)
		}
	}
	return mesh.NewDescriptor(g.Nx, g.Ny, nz, g.Dx, g.Dy, floorDepth)
}

// deformColumns applies both deformation phases to columns [lo,hi).
// Columns are independent, so disjoint ranges may run concurrently.
func deformColumns(cf *mesh.CoordinateField, g *raster.Grid, lo, hi int) {
	nz := cf.Desc.Nz
	floor := -cf.Desc.ZDim
	for n := lo; n < hi; n++ {
		col := cf.Z.RawRowView(n)
		col[nz-1] = g.Z[n] // surface assignment
		floats.Span(col, floor, col[nz-1])
	}
}
