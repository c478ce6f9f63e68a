// Package raster provides regular-grid elevation rasters and readers
// for common DEM text encodings.
package raster

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors reported before any downstream allocation happens.
var (
	ErrInvalidShape       = errors.New("raster: grid must have at least 2 rows and 2 columns")
	ErrDegenerateSpacing  = errors.New("raster: zero cell spacing")
	ErrNonFiniteElevation = errors.New("raster: non-finite elevation value")
)

// Grid is a regular 2-D elevation raster.
//
// Values are stored row-major: Z[j*Nx+i] is the sample at raster column i
// (x direction) and raster row j (y direction). Dx and Dy carry the sign of
// the source affine transform, so a north-up DEM read top row first has
// Dy < 0. Consumers that need physical extents use the magnitudes.
type Grid struct {
	Nx, Ny           int     // Columns, rows
	Dx, Dy           float64 // Cell spacing, signed
	OriginX, OriginY float64 // World coordinate of sample (0,0)
	Z                []float64
}

// NewGrid allocates a zero-elevation grid and validates its shape and
// spacing up front.
func NewGrid(nx, ny int, dx, dy float64) (*Grid, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, nx, ny)
	}
	if dx == 0 || dy == 0 {
		return nil, fmt.Errorf("%w: dx=%g, dy=%g", ErrDegenerateSpacing, dx, dy)
	}
	return &Grid{
		Nx: nx,
		Ny: ny,
		Dx: dx,
		Dy: dy,
		Z:  make([]float64, nx*ny),
	}, nil
}

// Synthetic builds a grid by sampling f at every cell centre. Intended for
// tests and examples.
func Synthetic(nx, ny int, dx, dy float64, f func(x, y float64) float64) (*Grid, error) {
	g, err := NewGrid(nx, ny, dx, dy)
	if err != nil {
		return nil, err
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			g.Z[j*nx+i] = f(float64(i)*math.Abs(dx), float64(j)*math.Abs(dy))
		}
	}
	return g, nil
}

// At returns the elevation at column i, row j.
func (g *Grid) At(i, j int) float64 { return g.Z[j*g.Nx+i] }

// Set assigns the elevation at column i, row j.
func (g *Grid) Set(i, j int, v float64) { g.Z[j*g.Nx+i] = v }

// MinMax returns the elevation extrema. Non-finite values, if present,
// contaminate the result; call Validate first.
func (g *Grid) MinMax() (min, max float64) {
	min, max = g.Z[0], g.Z[0]
	for _, v := range g.Z[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Bounds returns the physical extent covered by the raster,
// (Nx*|Dx|, Ny*|Dy|).
func (g *Grid) Bounds() (xdim, ydim float64) {
	return float64(g.Nx) * math.Abs(g.Dx), float64(g.Ny) * math.Abs(g.Dy)
}

// Validate checks shape, spacing and value finiteness. It reports the first
// offending cell for non-finite values so the caller can locate bad source
// data (common at DEM tile edges).
func (g *Grid) Validate() error {
	if g.Nx < 2 || g.Ny < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidShape, g.Nx, g.Ny)
	}
	if g.Dx == 0 || g.Dy == 0 {
		return fmt.Errorf("%w: dx=%g, dy=%g", ErrDegenerateSpacing, g.Dx, g.Dy)
	}
	if len(g.Z) != g.Nx*g.Ny {
		return fmt.Errorf("%w: %d values for %dx%d grid", ErrInvalidShape, len(g.Z), g.Nx, g.Ny)
	}
	for n, v := range g.Z {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %g at column %d, row %d", ErrNonFiniteElevation, v, n%g.Nx, n/g.Nx)
		}
	}
	return nil
}
