// gacalc evaluates one geometric algebra operation.
//
// Usage:
//
//	gacalc [-dim 2|3] [-op name] [-json] [-v] [--] operand [operand]
//
// Operands are comma separated components in basis order, 1,e1,e2,e12 in
// two dimensions and 1,e1,e2,e3,e12,e23,e31,e123 in three. Put -- before
// operands that start with a minus sign.
//
//	gacalc -dim 3 -op mul 1,2,3,4,5,6,7,8 9,10,11,12,13,14,15,16
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var (
	errOperand   = errors.New("bad operand")
	errUnknownOp = errors.New("unknown operation")
)

type settings struct {
	dim     int
	op      string
	json    bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var s settings

	flags := flag.NewFlagSet("gacalc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&s.dim, "dim", 3, "Algebra dimension, 2 or 3")
	flags.StringVar(&s.op, "op", "mul", "Operation: "+strings.Join(g3.ops(), " "))
	flags.BoolVar(&s.json, "json", false, "Print the result as JSON")
	flags.BoolVar(&s.verbose, "v", false, "Log debug information to stderr")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if s.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	operands, err := parseOperands(flags.Args())
	if err != nil {
		logger.Error("parsing operands", "err", err)
		return 2
	}

	logger.Debug("evaluating", "dim", s.dim, "op", s.op, "operands", len(operands))

	var r result
	switch s.dim {
	case 2:
		r, err = g2.eval(s.op, operands)
	case 3:
		r, err = g3.eval(s.op, operands)
	default:
		logger.Error("dimension must be 2 or 3", "dim", s.dim)
		return 2
	}

	if errors.Is(err, errOperand) || errors.Is(err, errUnknownOp) {
		logger.Error("invalid arguments", "err", err)
		return 2
	}
	if err != nil {
		logger.Error("evaluation failed", "op", s.op, "err", err)
		return 1
	}

	if s.json {
		err = writeJSON(stdout, s.op, operands, r)
	} else {
		err = writeText(stdout, s.dim, r)
	}
	if err != nil {
		logger.Error("writing result", "err", err)
		return 1
	}

	return 0
}

func parseOperands(args []string) ([][]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no operands", errOperand)
	}

	operands := make([][]float64, 0, len(args))
	for _, arg := range args {
		fields := strings.Split(arg, ",")
		v := make([]float64, len(fields))
		for i, f := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", errOperand, arg, err)
			}
			v[i] = x
		}
		operands = append(operands, v)
	}

	return operands, nil
}

var basisNames = map[int][]string{
	2: {"", "e1", "e2", "e12"},
	3: {"", "e1", "e2", "e3", "e12", "e23", "e31", "e123"},
}

func writeText(w io.Writer, dim int, r result) error {
	if r.IsScalar {
		_, err := fmt.Fprintln(w, strconv.FormatFloat(r.Scalar, 'g', -1, 64))
		return err
	}

	var terms []string
	for i, c := range r.Multivector {
		if c == 0 {
			continue
		}
		term := strconv.FormatFloat(c, 'g', -1, 64)
		if name := basisNames[dim][i]; name != "" {
			term += "*" + name
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		terms = []string{"0"}
	}

	_, err := fmt.Fprintln(w, strings.ReplaceAll(strings.Join(terms, " + "), "+ -", "- "))
	return err
}

func writeJSON(w io.Writer, op string, operands [][]float64, r result) error {
	out := map[string]any{
		"op":       op,
		"operands": operands,
	}
	if r.IsScalar {
		out["scalar"] = r.Scalar
	} else {
		out["result"] = r.Multivector
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", jsonData)
	return err
}
