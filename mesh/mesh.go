/*
Triangle meshes and signed distances to them, with the geometry done
in the three dimensional algebra.
*/

package mesh

import (
	"errors"
	"math"

	"github.com/xernobyl/cggeomalg/e3ga"
	"github.com/xernobyl/cggeomalg/scalar"
	"github.com/xernobyl/cggeomalg/vec"
)

var (
	ErrNotWatertight = errors.New("mesh is not watertight")
	ErrFaceArity     = errors.New("only triangular faces supported")
	ErrVertexArity   = errors.New("unexpected number of vertex coordinates")
	ErrVertexIndex   = errors.New("vertex index out of range")
	ErrGridSize      = errors.New("grid size must be at least 1 on every axis")
	ErrEmptyMesh     = errors.New("mesh has no triangles")
)

type Vec3 = vec.Vec3[float64]

// Triangle holds zero based vertex indices, counterclockwise when seen
// from outside.
type Triangle [3]uint32

type Mesh struct {
	Vertices  []Vec3
	Triangles []Triangle
	Min       Vec3 // Bounding box bottom corner
	Max       Vec3 // Bounding box top corner
}

func (m *Mesh) updateBounds() {
	m.Min = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	m.Max = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, v := range m.Vertices {
		for i := range 3 {
			m.Min[i] = min(m.Min[i], v[i])
			m.Max[i] = max(m.Max[i], v[i])
		}
	}
}

// Rotate applies the rotor r to every vertex and recomputes the
// bounding box.
func (m *Mesh) Rotate(r e3ga.Multivector[float64]) {
	for i, v := range m.Vertices {
		m.Vertices[i] = vec.Rotate(v, r)
	}
	m.updateBounds()
}

func (m *Mesh) triangle(i int) (a, b, c Vec3) {
	t := m.Triangles[i]
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}

// Distance returns the signed distance from p to the closest point on the
// mesh. An empty mesh is infinitely far away.
func (m *Mesh) Distance(p Vec3) float64 {
	minDistance := math.Inf(1)

	for i := range m.Triangles {
		a, b, c := m.triangle(i)
		d := Distance(p, a, b, c)

		if d == 0 {
			return 0
		}

		if math.Abs(d) < math.Abs(minDistance) {
			minDistance = d
		}
	}

	return minDistance
}

// segment returns the squared distance from the edge e, starting at the
// origin, to the point at offset q from its start.
func segment(e, q Vec3) float64 {
	l := vec.Dot2(e)
	if l == 0 {
		return vec.Dot2(q)
	}
	return vec.Dot2(vec.Sub(vec.Scale(e, vec.Saturate(vec.Dot(e, q)/l)), q))
}

/*
Signed distance from point p to triangle defined by a, b, and c.
Points on the side (b-a)×(c-a) points to are positive.
*/
func Distance(p, a, b, c Vec3) float64 {
	ba := vec.Sub(b, a)
	pa := vec.Sub(p, a)
	cb := vec.Sub(c, b)
	pb := vec.Sub(p, b)
	ac := vec.Sub(a, c)
	pc := vec.Sub(p, c)
	nor := vec.Cross(ba, ac)

	side := vec.Dot(nor, pa)

	var d float64
	if scalar.Sign(vec.Dot(vec.Cross(ba, nor), pa))+
		scalar.Sign(vec.Dot(vec.Cross(cb, nor), pb))+
		scalar.Sign(vec.Dot(vec.Cross(ac, nor), pc)) < 2 {
		d = math.Sqrt(min(segment(ba, pa), segment(cb, pb), segment(ac, pc)))
	} else {
		d = math.Sqrt(side * side / vec.Dot2(nor))
	}

	if side > 0 {
		return -d
	}
	return d
}
