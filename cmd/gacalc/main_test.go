package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestMul(t *testing.T) {
	code, out, _ := runArgs("-dim", "3", "-op", "mul", "1,2,3,4,5,6,7,8", "9,10,11,12,13,14,15,16")
	assert.Equal(t, 0, code)
	assert.Equal(t, "-272 - 188*e1 - 202*e2 - 120*e3 + 218*e12 + 156*e23 + 238*e31 + 410*e123\n", out)
}

func TestUnary(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-dim", "2", "-op", "rev", "1,1,1,2"}, "1 + 1*e1 + 1*e2 - 2*e12\n"},
		{[]string{"-dim", "2", "-op", "dual", "1,2,3,4"}, "-4 - 3*e1 + 2*e2 + 1*e12\n"},
		{[]string{"-dim", "3", "-op", "grade2", "1,1,1,1,1,1,1,1"}, "1*e12 + 1*e23 + 1*e31\n"},
		{[]string{"-dim", "2", "-op", "grade3", "1,1,1,1"}, "0\n"},
		{[]string{"-dim", "3", "-op", "mag", "0,3,4,12,0,0,0,0"}, "13\n"},
		{[]string{"-dim", "3", "-op", "inv", "0,0,0,0,0,0,0,1"}, "-1*e123\n"},
		{[]string{"-dim", "2", "-op", "add", "1,2,3,4", "5,6,7,8"}, "6 + 8*e1 + 10*e2 + 12*e12\n"},
		{[]string{"-dim", "2", "-op", "comm", "0,1,0,0", "0,0,1,0"}, "1*e12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[3], func(t *testing.T) {
			code, out, _ := runArgs(tt.args...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestJSON(t *testing.T) {
	code, out, _ := runArgs("-json", "-dim", "2", "-op", "mul", "0,0,0,1", "0,0,0,1")
	require.Equal(t, 0, code)

	var got struct {
		Op       string      `json:"op"`
		Operands [][]float64 `json:"operands"`
		Result   []float64   `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "mul", got.Op)
	assert.Equal(t, [][]float64{{0, 0, 0, 1}, {0, 0, 0, 1}}, got.Operands)
	assert.Equal(t, []float64{-1, 0, 0, 0}, got.Result)

	code, out, _ = runArgs("-json", "-op", "mag", "0,3,4,0,0,0,0,0")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"op": "mag", "operands": [[0,3,4,0,0,0,0,0]], "scalar": 5}`, out)
}

func TestNegativeOperands(t *testing.T) {
	code, out, _ := runArgs("-dim", "2", "-op", "neg", "--", "-1,2,-3,4")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1 - 2*e1 + 3*e2 - 4*e12\n", out)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no operands", []string{"-op", "rev"}, 2},
		{"bad number", []string{"-dim", "2", "-op", "rev", "1,x,3,4"}, 2},
		{"wrong size", []string{"-dim", "3", "-op", "rev", "1,2,3,4"}, 2},
		{"unknown op", []string{"-dim", "2", "-op", "frob", "1,2,3,4"}, 2},
		{"missing operand", []string{"-dim", "2", "-op", "mul", "1,2,3,4"}, 2},
		{"extra operand", []string{"-dim", "2", "-op", "rev", "1,2,3,4", "1,2,3,4"}, 2},
		{"bad dim", []string{"-dim", "4", "-op", "rev", "1,2,3,4"}, 2},
		{"bad flag", []string{"-frob"}, 2},
		{"division by null", []string{"-dim", "2", "-op", "div", "1,2,3,4", "1,1,0,0"}, 1},
		{"inverse of zero", []string{"-dim", "3", "-op", "inv", "0,0,0,0,0,0,0,0"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runArgs(tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestVerbose(t *testing.T) {
	code, _, errOut := runArgs("-v", "-dim", "2", "-op", "rev", "1,2,3,4")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "op=rev")
}
