package evaluator_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

// evalLine runs input through the whole pipeline, failing the test on
// any diagnostic before the evaluation stage.
func evalLine(t *testing.T, input string, stderr *bytes.Buffer) (*evaluator.Evaluator, float64) {
	t.Helper()

	lex := lexer.New(input, stderr)
	tokens := lex.Lex()
	require.False(t, lex.HadError(), "lexical error: %s", stderr)

	p := parser.New(tokens, stderr)
	expr := p.Parse()
	require.False(t, p.HadError(), "syntax error: %s", stderr)

	ev := evaluator.New(stderr)
	return ev, ev.Evaluate(expr)
}

type testCase struct {
	name  string
	input string
	want  float64
}

func TestEvaluate(t *testing.T) {
	tests := []testCase{
		{name: "literal", input: "42", want: 42},
		{name: "precedence", input: "2+3*4", want: 14},
		{name: "unary then binary minus", input: "-2-3", want: -5},
		{name: "left associative division", input: "10/2/5", want: 1},
		{name: "exponent literal", input: "1e10", want: 1e10},
		{name: "negative exponent", input: "25e-1", want: 2.5},
		{name: "overflowing literal saturates", input: "1e999", want: math.Inf(1)},
		{name: "unary plus", input: "+7", want: 7},
		{name: "unary chain", input: "--5", want: 5},
		{name: "unary against factor", input: "-2*3", want: -6},
		{name: "mixed levels", input: "2+10/2-3*2", want: 1},
		{name: "fractions", input: "3.5+1.5", want: 5},
		{name: "sum of products", input: "2*3+4*5", want: 26},
		{name: "whitespace", input: " 1 +\t2 ", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := bytes.NewBuffer(nil)
			ev, got := evalLine(t, tt.input, stderr)

			require.False(t, ev.HadError(), "evaluation error: %s", stderr)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, stderr.String(), "no diagnostic expected")
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got float64)
	}{
		{
			name:  "positive infinity",
			input: "1/0",
			check: func(t *testing.T, got float64) {
				assert.True(t, math.IsInf(got, 1), "expected +Inf, got %g", got)
			},
		},
		{
			name:  "negative infinity",
			input: "-1/0",
			check: func(t *testing.T, got float64) {
				assert.True(t, math.IsInf(got, -1), "expected -Inf, got %g", got)
			},
		},
		{
			name:  "zero over zero",
			input: "0/0",
			check: func(t *testing.T, got float64) {
				assert.True(t, math.IsNaN(got), "expected NaN, got %g", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := bytes.NewBuffer(nil)
			ev, got := evalLine(t, tt.input, stderr)

			require.False(t, ev.HadError(), "division by zero must not be a diagnostic")
			assert.Empty(t, stderr.String())
			tt.check(t, got)
		})
	}
}

func TestEvaluateInvalidOperators(t *testing.T) {
	tests := []struct {
		name   string
		expr   ast.Expr
		stderr string
	}{
		{
			name:   "unary star",
			expr:   ast.Unary{Op: lexer.TokStar, Right: ast.Literal{Value: 1}},
			stderr: "invalid unary operator \"*\"\n",
		},
		{
			name: "binary eof",
			expr: ast.Binary{
				Left:  ast.Literal{Value: 1},
				Op:    lexer.TokEOF,
				Right: ast.Literal{Value: 2},
			},
			stderr: "invalid binary operator \"EOF\"\n",
		},
		{
			name: "invalid operand bubbles",
			expr: ast.Binary{
				Left:  ast.Unary{Op: lexer.TokSlash, Right: ast.Literal{Value: 1}},
				Op:    lexer.TokPlus,
				Right: ast.Literal{Value: 2},
			},
			stderr: "invalid unary operator \"/\"\n",
		},
		{
			name:   "nil node",
			expr:   nil,
			stderr: "invalid expression node <nil>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := bytes.NewBuffer(nil)
			ev := evaluator.New(stderr)
			got := ev.Evaluate(tt.expr)

			assert.True(t, math.IsNaN(got), "expected NaN, got %g", got)
			assert.True(t, ev.HadError(), "error state should be latched")
			assert.Equal(t, tt.stderr, stderr.String())
		})
	}
}
