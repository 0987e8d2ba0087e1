package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type edgeKey struct {
	A, B uint32
}

func undirected(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{A: a, B: b}
}

// LoadOBJ loads a mesh from an OBJ file.
func LoadOBJ(filepath string) (*Mesh, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return m, nil
}

// ReadOBJ parses the vertices and triangular faces of a Wavefront OBJ
// stream and calculates the bounding box. Faces may use the v/vt/vn forms
// and negative, relative indices; everything other than v and f lines is
// ignored. Every edge must be shared by exactly two faces. A stream with
// no faces is accepted, but SampleGrid on it returns ErrEmptyMesh; with no
// vertices either, Min is +Inf and Max is -Inf on every axis.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	model := &Mesh{}
	edgeCount := make(map[edgeKey]int)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)

		switch tokens[0] {
		case "v":
			// x y z with an optional w
			if len(tokens) != 4 && len(tokens) != 5 {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrVertexArity, line)
			}

			var vertex Vec3
			for i := range 3 {
				f, err := strconv.ParseFloat(tokens[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				vertex[i] = f
			}
			model.Vertices = append(model.Vertices, vertex)

		case "f":
			if len(tokens) != 4 {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrFaceArity, line)
			}

			var triangle Triangle
			for i := range 3 {
				idx, err := faceIndex(tokens[i+1], len(model.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				triangle[i] = idx
			}
			model.Triangles = append(model.Triangles, triangle)

			for i := range 3 {
				edgeCount[undirected(triangle[i], triangle[(i+1)%3])]++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for e, count := range edgeCount {
		if count != 2 {
			return nil, fmt.Errorf("%w: edge %d-%d is used by %d faces", ErrNotWatertight, e.A+1, e.B+1, count)
		}
	}

	model.updateBounds()

	return model, nil
}

// faceIndex turns the vertex part of a face token into a zero based
// index into the vertices read so far. Negative indices count back from
// the last of them.
func faceIndex(token string, vertexCount int) (uint32, error) {
	v, _, _ := strings.Cut(token, "/")

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}

	if i < 0 {
		i += vertexCount
	} else {
		i--
	}

	if i < 0 || i >= vertexCount {
		return 0, fmt.Errorf("%w: %s", ErrVertexIndex, token)
	}

	return uint32(i), nil
}
