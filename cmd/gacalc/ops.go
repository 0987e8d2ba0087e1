package main

import (
	"fmt"
	"sort"

	"github.com/xernobyl/cggeomalg/e2ga"
	"github.com/xernobyl/cggeomalg/e3ga"
)

type (
	mv2 = e2ga.Multivector[float64]
	mv3 = e3ga.Multivector[float64]
)

// algebra is the operation table of one dimension. Multivectors cross it
// as plain component slices.
type algebra[M any] struct {
	size    int
	from    func([]float64) M
	to      func(M) []float64
	binary  map[string]func(a, b M) (M, error)
	unary   map[string]func(a M) (M, error)
	scalars map[string]func(a M) float64
}

type result struct {
	Multivector []float64
	Scalar      float64
	IsScalar    bool
}

func (al *algebra[M]) eval(op string, operands [][]float64) (result, error) {
	for _, o := range operands {
		if len(o) != al.size {
			return result{}, fmt.Errorf("%w: want %d components, got %d", errOperand, al.size, len(o))
		}
	}

	if f, ok := al.binary[op]; ok {
		if len(operands) != 2 {
			return result{}, fmt.Errorf("%w: %s takes 2 operands, got %d", errOperand, op, len(operands))
		}
		m, err := f(al.from(operands[0]), al.from(operands[1]))
		if err != nil {
			return result{}, err
		}
		return result{Multivector: al.to(m)}, nil
	}

	if len(operands) != 1 {
		if al.unary[op] != nil || al.scalars[op] != nil {
			return result{}, fmt.Errorf("%w: %s takes 1 operand, got %d", errOperand, op, len(operands))
		}
		return result{}, fmt.Errorf("%w: %q", errUnknownOp, op)
	}

	if f, ok := al.unary[op]; ok {
		m, err := f(al.from(operands[0]))
		if err != nil {
			return result{}, err
		}
		return result{Multivector: al.to(m)}, nil
	}

	if f, ok := al.scalars[op]; ok {
		return result{Scalar: f(al.from(operands[0])), IsScalar: true}, nil
	}

	return result{}, fmt.Errorf("%w: %q", errUnknownOp, op)
}

func (al *algebra[M]) ops() []string {
	var names []string
	for n := range al.binary {
		names = append(names, n)
	}
	for n := range al.unary {
		names = append(names, n)
	}
	for n := range al.scalars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func pure[M any](f func(M, M) M) func(M, M) (M, error) {
	return func(a, b M) (M, error) { return f(a, b), nil }
}

func pure1[M any](f func(M) M) func(M) (M, error) {
	return func(a M) (M, error) { return f(a), nil }
}

var g2 = &algebra[mv2]{
	size: 4,
	from: func(v []float64) (m mv2) {
		copy(m[:], v)
		return m
	},
	to: func(m mv2) []float64 { return m[:] },
	binary: map[string]func(a, b mv2) (mv2, error){
		"add":      pure(mv2.Add),
		"sub":      pure(mv2.Sub),
		"mul":      pure(mv2.Mul),
		"wedge":    pure(mv2.Wedge),
		"dot":      pure(mv2.Dot),
		"lc":       pure(mv2.LeftContract),
		"rc":       pure(mv2.RightContract),
		"comm":     pure(e2ga.Commutator[float64]),
		"anticomm": pure(e2ga.Anticommutator[float64]),
		"div": func(a, b mv2) (mv2, error) {
			if !e2ga.IsInvertible(b) {
				return mv2{}, fmt.Errorf("%w: %v", e2ga.ErrNotInvertible, b)
			}
			return e2ga.Div(a, b), nil
		},
	},
	unary: map[string]func(a mv2) (mv2, error){
		"rev":    pure1(mv2.Reverse),
		"conj":   pure1(mv2.Conjugate),
		"invol":  pure1(mv2.Involute),
		"dual":   pure1(mv2.Dual),
		"neg":    pure1(mv2.Neg),
		"norm":   pure1(e2ga.Normalize[float64]),
		"grade0": func(a mv2) (mv2, error) { return a.Grade(0), nil },
		"grade1": func(a mv2) (mv2, error) { return a.Grade(1), nil },
		"grade2": func(a mv2) (mv2, error) { return a.Grade(2), nil },
		"grade3": func(a mv2) (mv2, error) { return a.Grade(3), nil },
		"inv": func(a mv2) (mv2, error) {
			inv, ok := e2ga.Inverse(a)
			if !ok {
				return mv2{}, fmt.Errorf("%w: %v", e2ga.ErrNotInvertible, a)
			}
			return inv, nil
		},
	},
	scalars: map[string]func(a mv2) float64{
		"mag": e2ga.Magnitude[float64],
	},
}

var g3 = &algebra[mv3]{
	size: 8,
	from: func(v []float64) (m mv3) {
		copy(m[:], v)
		return m
	},
	to: func(m mv3) []float64 { return m[:] },
	binary: map[string]func(a, b mv3) (mv3, error){
		"add":      pure(mv3.Add),
		"sub":      pure(mv3.Sub),
		"mul":      pure(mv3.Mul),
		"wedge":    pure(mv3.Wedge),
		"dot":      pure(mv3.Dot),
		"lc":       pure(mv3.LeftContract),
		"rc":       pure(mv3.RightContract),
		"comm":     pure(e3ga.Commutator[float64]),
		"anticomm": pure(e3ga.Anticommutator[float64]),
		"div": func(a, b mv3) (mv3, error) {
			if !e3ga.IsInvertible(b) {
				return mv3{}, fmt.Errorf("%w: %v", e3ga.ErrNotInvertible, b)
			}
			return e3ga.Div(a, b), nil
		},
	},
	unary: map[string]func(a mv3) (mv3, error){
		"rev":    pure1(mv3.Reverse),
		"conj":   pure1(mv3.Conjugate),
		"invol":  pure1(mv3.Involute),
		"dual":   pure1(mv3.Dual),
		"neg":    pure1(mv3.Neg),
		"norm":   pure1(e3ga.Normalize[float64]),
		"grade0": func(a mv3) (mv3, error) { return a.Grade(0), nil },
		"grade1": func(a mv3) (mv3, error) { return a.Grade(1), nil },
		"grade2": func(a mv3) (mv3, error) { return a.Grade(2), nil },
		"grade3": func(a mv3) (mv3, error) { return a.Grade(3), nil },
		"inv": func(a mv3) (mv3, error) {
			inv, ok := e3ga.Inverse(a)
			if !ok {
				return mv3{}, fmt.Errorf("%w: %v", e3ga.ErrNotInvertible, a)
			}
			return inv, nil
		},
	},
	scalars: map[string]func(a mv3) float64{
		"mag": e3ga.Magnitude[float64],
	},
}
