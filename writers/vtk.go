package writers

import (
	"bufio"
	"fmt"
	"os"

	"github.com/bollig/topomesh/mesh"
)

// WriteVTK writes cf as a legacy ASCII VTK structured grid. Points are
// emitted in node-index order, which is exactly the x-fastest ordering the
// STRUCTURED_GRID dataset expects. A POINT_DATA elevation scalar (the node
// z value) is included so viewers can colour by depth out of the box.
func WriteVTK(path string, cf *mesh.CoordinateField) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d := cf.Desc
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# vtk DataFile Version 3.0")
	fmt.Fprintln(w, "topography mesh")
	fmt.Fprintln(w, "ASCII")
	fmt.Fprintln(w, "DATASET STRUCTURED_GRID")
	fmt.Fprintf(w, "DIMENSIONS %d %d %d\n", d.Nx, d.Ny, d.Nz)
	fmt.Fprintf(w, "POINTS %d double\n", d.NumNodes())
	for k := 0; k < d.Nz; k++ {
		for n := 0; n < d.NumColumns(); n++ {
			fmt.Fprintf(w, "%g %g %g\n", cf.X[n], cf.Y[n], cf.Z.At(n, k))
		}
	}
	fmt.Fprintf(w, "POINT_DATA %d\n", d.NumNodes())
	fmt.Fprintln(w, "SCALARS elevation double 1")
	fmt.Fprintln(w, "LOOKUP_TABLE default")
	for k := 0; k < d.Nz; k++ {
		for n := 0; n < d.NumColumns(); n++ {
			fmt.Fprintf(w, "%g\n", cf.Z.At(n, k))
		}
	}
	return w.Flush()
}
