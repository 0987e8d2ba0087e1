package mesh

import "sort"

// WindingError names two adjacent triangles that traverse their shared
// edge in the same direction, so one of them faces the wrong way.
type WindingError struct {
	A, B int
	Edge [2]uint32
}

// sameWindingOrder reports whether triangleB traverses the shared edge in
// the opposite direction to triangleA, which is what consistently wound
// neighbours do.
func sameWindingOrder(triangleA, triangleB Triangle, shared [2]uint32) bool {
	for i, a := range triangleA {
		if a != shared[0] {
			continue
		}

		// other triangle should have shared[1] -> shared[0]
		forward := triangleA[(i+1)%3] == shared[1]

		for j, b := range triangleB {
			if b == shared[0] {
				if forward {
					return triangleB[(j+2)%3] == shared[1]
				}
				return triangleB[(j+1)%3] == shared[1]
			}
		}
	}

	return false
}

/*
CheckWinding returns every pair of adjacent triangles with inconsistent
winding, ordered by triangle index. A mesh read by ReadOBJ has exactly two
triangles on every edge.
*/
func (m *Mesh) CheckWinding() []WindingError {
	faces := make(map[edgeKey][]int)
	for i, t := range m.Triangles {
		for j := range 3 {
			e := undirected(t[j], t[(j+1)%3])
			faces[e] = append(faces[e], i)
		}
	}

	var errs []WindingError
	for e, list := range faces {
		for x := range list {
			for _, b := range list[x+1:] {
				a := list[x]
				shared := [2]uint32{e.A, e.B}
				if !sameWindingOrder(m.Triangles[a], m.Triangles[b], shared) {
					errs = append(errs, WindingError{A: a, B: b, Edge: shared})
				}
			}
		}
	}

	sort.Slice(errs, func(i, j int) bool {
		if errs[i].A != errs[j].A {
			return errs[i].A < errs[j].A
		}
		if errs[i].B != errs[j].B {
			return errs[i].B < errs[j].B
		}
		return errs[i].Edge[0] < errs[j].Edge[0]
	})

	return errs
}
