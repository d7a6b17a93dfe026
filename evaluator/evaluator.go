// Package evaluator reduces expression trees to numeric values.
package evaluator

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/diag"
	"go.creack.net/gocalc/lexer"
)

type Evaluator struct {
	*diag.Reporter
}

// New creates an Evaluator. Internal inconsistencies are reported to
// stderr, nil meaning os.Stderr.
func New(stderr io.Writer) *Evaluator {
	return &Evaluator{Reporter: diag.NewReporter(stderr)}
}

// Evaluate walks the tree and returns its numeric value. An operator
// kind inconsistent with its node variant yields NaN and latches the
// error state. Division by zero follows IEEE semantics and is not an
// error.
func (e *Evaluator) Evaluate(expr ast.Expr) float64 {
	switch node := expr.(type) {
	case ast.Literal:
		return node.Value
	case ast.Unary:
		right := e.Evaluate(node.Right)
		switch node.Op {
		case lexer.TokPlus:
			return right
		case lexer.TokMinus:
			return -right
		default:
			e.Report(&OpError{Op: node.Op, Unary: true})
			return math.NaN()
		}
	case ast.Binary:
		left, right := e.Evaluate(node.Left), e.Evaluate(node.Right)
		switch node.Op {
		case lexer.TokPlus:
			return left + right
		case lexer.TokMinus:
			return left - right
		case lexer.TokStar:
			return left * right
		case lexer.TokSlash:
			return left / right
		default:
			e.Report(&OpError{Op: node.Op})
			return math.NaN()
		}
	default:
		e.Report(&NodeError{Node: expr})
		return math.NaN()
	}
}

// OpError is an error indicating an operator kind inconsistent with
// its node variant. Unreachable with parser built trees.
type OpError struct {
	// Op is the operator kind found on the node.
	Op lexer.TokenType
	// Unary is whether the node was a unary operation.
	Unary bool
}

func (err *OpError) Error() string {
	kind := "binary"
	if err.Unary {
		kind = "unary"
	}
	return "invalid " + kind + " operator " + strconv.Quote(err.Op.String())
}

// NodeError is an error indicating an expression node outside the
// closed variant set.
type NodeError struct {
	// Node is the unsupported node.
	Node ast.Expr
}

func (err *NodeError) Error() string {
	return fmt.Sprintf("invalid expression node %T", err.Node)
}

var (
	_ error = (*OpError)(nil)
	_ error = (*NodeError)(nil)
)
