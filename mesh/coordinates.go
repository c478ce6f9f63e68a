package mesh

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CoordinateField stores node coordinates for a structured mesh.
//
// Horizontal positions are constant down a column, so X and Y are stored
// once per column (index j*Nx+i). Z is a (Nx*Ny) x Nz dense matrix: row n
// holds the vertical profile of column n, column k the layer, with k=0 the
// deepest layer and k=Nz-1 the surface. Per-column operations work on raw
// row views with no copying.
type CoordinateField struct {
	Desc Descriptor

	X, Y []float64 // Per-column horizontal position
	Z    *mat.Dense
}

// NewCoordinateField allocates a flat reference mesh for d: nodes on a
// regular horizontal lattice over [0,XDim] x [0,YDim], with Nz layers
// evenly spaced from -ZDim up to 0 in every column.
func NewCoordinateField(d Descriptor) *CoordinateField {
	nc := d.NumColumns()
	cf := &CoordinateField{
		Desc: d,
		X:    make([]float64, nc),
		Y:    make([]float64, nc),
		Z:    mat.NewDense(nc, d.Nz, nil),
	}
	hx := d.XDim / float64(d.Nx-1)
	hy := d.YDim / float64(d.Ny-1)
	for j := 0; j < d.Ny; j++ {
		for i := 0; i < d.Nx; i++ {
			n := d.ColumnIndex(i, j)
			cf.X[n] = float64(i) * hx
			cf.Y[n] = float64(j) * hy
			floats.Span(cf.Z.RawRowView(n), -d.ZDim, 0)
		}
	}
	return cf
}

// Node returns the coordinates of node (i,j,k).
func (c *CoordinateField) Node(i, j, k int) (x, y, z float64) {
	n := c.Desc.ColumnIndex(i, j)
	return c.X[n], c.Y[n], c.Z.At(n, k)
}

// ColumnZ returns the vertical profile of column (i,j) as a mutable view.
func (c *CoordinateField) ColumnZ(i, j int) []float64 {
	return c.Z.RawRowView(c.Desc.ColumnIndex(i, j))
}

// SurfaceZ returns the top-layer elevation of column (i,j).
func (c *CoordinateField) SurfaceZ(i, j int) float64 {
	return c.Z.At(c.Desc.ColumnIndex(i, j), c.Desc.Nz-1)
}

// NumNodes returns the total node count.
func (c *CoordinateField) NumNodes() int { return c.Desc.NumNodes() }

// Coords flattens the field into interleaved (x,y,z) triples in node-index
// order (see Descriptor.NodeIndex): the layout the finite-element side
// consumes directly.
func (c *CoordinateField) Coords() []float64 {
	d := c.Desc
	out := make([]float64, 3*d.NumNodes())
	for k := 0; k < d.Nz; k++ {
		for n := 0; n < d.NumColumns(); n++ {
			p := 3 * (k*d.NumColumns() + n)
			out[p] = c.X[n]
			out[p+1] = c.Y[n]
			out[p+2] = c.Z.At(n, k)
		}
	}
	return out
}
