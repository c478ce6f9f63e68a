package raster

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// coordTol is the relative tolerance used when checking that XYZ samples
// sit on a regular lattice.
const coordTol = 1e-6

// ReadXYZ reads a whitespace or tab delimited "x y z" point file describing
// a regular grid. Points must be written row by row (x varying fastest);
// the grid dimensions, spacing and origin are inferred from the
// coordinates. Lines starting with '#' and blank lines are skipped.
func ReadXYZ(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var xs, ys, zs []float64
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 fields, got %d", filename, lineno, len(fields))
		}
		var p [3]float64
		for c := 0; c < 3; c++ {
			p[c], err = strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid value %q: %v", filename, lineno, fields[c], err)
			}
		}
		xs = append(xs, p[0])
		ys = append(ys, p[1])
		zs = append(zs, p[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(zs) < 4 {
		return nil, fmt.Errorf("%w: %d points in %s", ErrInvalidShape, len(zs), filename)
	}

	return gridFromPoints(filename, xs, ys, zs)
}

// gridFromPoints reconstructs the lattice parameters from row-ordered
// sample coordinates and verifies every point lands where the lattice
// says it should.
func gridFromPoints(filename string, xs, ys, zs []float64) (*Grid, error) {
	// The first row is the run of points sharing y with the first sample.
	yTol := rowTolerance(ys)
	nx := 1
	for nx < len(ys) && math.Abs(ys[nx]-ys[0]) <= yTol {
		nx++
	}
	if nx < 2 || nx == len(ys) {
		return nil, fmt.Errorf("%w: cannot infer row length in %s", ErrInvalidShape, filename)
	}
	if len(zs)%nx != 0 {
		return nil, fmt.Errorf("%w: %d points do not fill rows of %d in %s", ErrInvalidShape, len(zs), nx, filename)
	}
	ny := len(zs) / nx

	dx := xs[1] - xs[0]
	dy := ys[nx] - ys[0]
	if dx == 0 || dy == 0 {
		return nil, fmt.Errorf("%w: inferred dx=%g, dy=%g in %s", ErrDegenerateSpacing, dx, dy, filename)
	}

	g, err := NewGrid(nx, ny, dx, dy)
	if err != nil {
		return nil, err
	}
	g.OriginX, g.OriginY = xs[0], ys[0]

	xTol := math.Abs(dx) * coordTol
	yTol = math.Abs(dy) * coordTol
	for n := range zs {
		i, j := n%nx, n/nx
		wantX := g.OriginX + float64(i)*dx
		wantY := g.OriginY + float64(j)*dy
		if math.Abs(xs[n]-wantX) > xTol || math.Abs(ys[n]-wantY) > yTol {
			return nil, fmt.Errorf("%s: point %d at (%g, %g) is off the regular grid (expected (%g, %g))",
				filename, n, xs[n], ys[n], wantX, wantY)
		}
		g.Z[n] = zs[n]
	}
	return g, nil
}

// rowTolerance picks a y comparison tolerance from the overall y span so
// row detection survives float noise in exported DEMs.
func rowTolerance(ys []float64) float64 {
	min, max := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	span := max - min
	if span == 0 {
		return 1e-12
	}
	return span * coordTol
}
