package mesh

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/xernobyl/cggeomalg/vec"
	"golang.org/x/sync/errgroup"
)

// Grid is a signed distance field sampled on a regular lattice. Data is
// indexed x + y*Width + z*Width*Height.
type Grid struct {
	Width, Height, Depth int
	Min, Max             Vec3 // First and last lattice point
	Data                 []float64
	MinDistance          float64
	MaxDistance          float64
}

func (g *Grid) index(x, y, z int) int {
	return x + y*g.Width + z*g.Width*g.Height
}

func (g *Grid) At(x, y, z int) float64 {
	return g.Data[g.index(x, y, z)]
}

// Point returns the position of lattice point (x, y, z).
func (g *Grid) Point(x, y, z int) Vec3 {
	return vec.Add(vec.Mul(Vec3{float64(x), float64(y), float64(z)}, g.step()), g.Min)
}

func (g *Grid) step() Vec3 {
	var s Vec3
	n := [3]int{g.Width, g.Height, g.Depth}
	for i := range 3 {
		if n[i] > 1 {
			s[i] = (g.Max[i] - g.Min[i]) / float64(n[i]-1)
		}
	}
	return s
}

/*
SampleGrid goes through a width x height x depth lattice spanning the
bounding box and calculates the signed distance to the mesh at every
point. Each z slice is evaluated on its own goroutine; at most GOMAXPROCS
run at once. An axis with a single sample sits on the bounding box
minimum.
*/
func (m *Mesh) SampleGrid(ctx context.Context, width, height, depth int) (*Grid, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrGridSize, width, height, depth)
	}
	if len(m.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	grid := &Grid{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Min:         m.Min,
		Max:         m.Max,
		Data:        make([]float64, width*height*depth),
		MinDistance: math.Inf(1),
		MaxDistance: math.Inf(-1),
	}

	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for z := range depth {
		g.Go(func() error {
			minDi := math.Inf(1)
			maxDi := math.Inf(-1)

			for y := range height {
				if err := ctx.Err(); err != nil {
					return err
				}

				for x := range width {
					d := m.Distance(grid.Point(x, y, z))
					grid.Data[grid.index(x, y, z)] = d

					minDi = min(minDi, d)
					maxDi = max(maxDi, d)
				}
			}

			mu.Lock()
			grid.MinDistance = min(grid.MinDistance, minDi)
			grid.MaxDistance = max(grid.MaxDistance, maxDi)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return grid, nil
}
