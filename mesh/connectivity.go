package mesh

// GeometryType identifies the shape of an element.
type GeometryType uint8

const (
	Hex GeometryType = iota // Hexahedron, the only type this mesh produces
	Tet                     // Tetrahedron
	Prism
	Pyramid
)

func (g GeometryType) String() string {
	switch g {
	case Hex:
		return "hexahedron"
	case Tet:
		return "tetrahedron"
	case Prism:
		return "prism"
	case Pyramid:
		return "pyramid"
	}
	return "unknown"
}

// NodesPerElement returns the vertex count of the element geometry.
func (g GeometryType) NodesPerElement() int {
	switch g {
	case Hex:
		return 8
	case Tet:
		return 4
	case Prism:
		return 6
	case Pyramid:
		return 5
	}
	return 0
}

// HexEToV builds the element-to-vertex connectivity table for the
// (Nx-1)(Ny-1)(Nz-1) hexahedra of a structured mesh. Each element lists
// its 8 node indices in the usual bottom-face-then-top-face circuit
// (VTK_HEXAHEDRON ordering), so the table can be handed to FE assembly or
// a VTK writer unchanged.
func HexEToV(d Descriptor) [][]int {
	ex, ey, ez := d.ElementRes()
	etov := make([][]int, 0, d.NumElements())
	for ek := 0; ek < ez; ek++ {
		for ej := 0; ej < ey; ej++ {
			for ei := 0; ei < ex; ei++ {
				etov = append(etov, []int{
					d.NodeIndex(ei, ej, ek),
					d.NodeIndex(ei+1, ej, ek),
					d.NodeIndex(ei+1, ej+1, ek),
					d.NodeIndex(ei, ej+1, ek),
					d.NodeIndex(ei, ej, ek+1),
					d.NodeIndex(ei+1, ej, ek+1),
					d.NodeIndex(ei+1, ej+1, ek+1),
					d.NodeIndex(ei, ej+1, ek+1),
				})
			}
		}
	}
	return etov
}
