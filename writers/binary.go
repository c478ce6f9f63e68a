// Package writers serializes mesh coordinate fields for downstream
// visualization: raw binary arrays with a companion XML description, and
// legacy ASCII VTK for quick inspection.
package writers

import (
	"fmt"

	"github.com/maseology/mmio"

	"github.com/bollig/topomesh/mesh"
)

// WriteBinary writes the node coordinates of cf as three little-endian
// float64 arrays, <prefix>.x.bin, <prefix>.y.bin and <prefix>.z.bin, each
// in node-index order (see mesh.Descriptor.NodeIndex). Use WriteXDMF to
// produce the matching description file.
func WriteBinary(prefix string, cf *mesh.CoordinateField) error {
	d := cf.Desc
	nn := d.NumNodes()
	xs := make([]float64, 0, nn)
	ys := make([]float64, 0, nn)
	zs := make([]float64, 0, nn)
	for k := 0; k < d.Nz; k++ {
		for n := 0; n < d.NumColumns(); n++ {
			xs = append(xs, cf.X[n])
			ys = append(ys, cf.Y[n])
			zs = append(zs, cf.Z.At(n, k))
		}
	}
	for ext, data := range map[string][]float64{"x": xs, "y": ys, "z": zs} {
		fp := fmt.Sprintf("%s.%s.bin", prefix, ext)
		if err := mmio.WriteBinary(fp, data); err != nil {
			return fmt.Errorf("writing %s: %w", fp, err)
		}
	}
	return nil
}
