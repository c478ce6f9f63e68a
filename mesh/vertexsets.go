package mesh

import "sort"

// VertexSet is a sorted set of flat node indices identifying a mesh wall.
// Boundary conditions downstream are applied per wall, so the sets follow
// the MinI/MaxI naming of cartesian FE meshes: I and J are the horizontal
// axes, K the vertical one. MaxK is the topographic surface.
type VertexSet []int

// Contains reports whether the set holds node index n.
func (s VertexSet) Contains(n int) bool {
	p := sort.SearchInts(s, n)
	return p < len(s) && s[p] == n
}

func wallSet(d Descriptor, keep func(i, j, k int) bool) VertexSet {
	var s VertexSet
	for k := 0; k < d.Nz; k++ {
		for j := 0; j < d.Ny; j++ {
			for i := 0; i < d.Nx; i++ {
				if keep(i, j, k) {
					s = append(s, d.NodeIndex(i, j, k))
				}
			}
		}
	}
	return s
}

// MinISet returns the wall at i=0 (west face).
func MinISet(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool { return i == 0 })
}

// MaxISet returns the wall at i=Nx-1 (east face).
func MaxISet(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool { return i == d.Nx-1 })
}

// MinJSet returns the wall at j=0 (south face).
func MinJSet(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool { return j == 0 })
}

// MaxJSet returns the wall at j=Ny-1 (north face).
func MaxJSet(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool { return j == d.Ny-1 })
}

// MinKSet returns the wall at k=0, the mesh floor.
func MinKSet(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool { return k == 0 })
}

// MaxKSet returns the wall at k=Nz-1, the topographic surface.
func MaxKSet(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool { return k == d.Nz-1 })
}

// AllWalls returns the union of the six boundary walls.
func AllWalls(d Descriptor) VertexSet {
	return wallSet(d, func(i, j, k int) bool {
		return i == 0 || i == d.Nx-1 || j == 0 || j == d.Ny-1 || k == 0 || k == d.Nz-1
	})
}
