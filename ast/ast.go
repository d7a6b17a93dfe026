// Package ast defines the expression tree built by the parser.
package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/gocalc/lexer"
)

// Expr represents an expression node. The set of implementations is
// closed: Literal, Unary and Binary.
type Expr interface {
	Dump() string
	expr()
}

// Literal is a numeric literal.
type Literal struct {
	Value float64
}

func (Literal) expr() {}

func (l Literal) Dump() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64)
}

// Unary is a prefix operator applied to a single operand.
type Unary struct {
	Op    lexer.TokenType // "+" or "-".
	Right Expr
}

func (Unary) expr() {}

func (u Unary) Dump() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Right.Dump())
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left  Expr
	Op    lexer.TokenType // "+", "-", "*" or "/".
	Right Expr
}

func (Binary) expr() {}

func (b Binary) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Op, b.Right.Dump())
}
