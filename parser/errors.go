package parser

import (
	"strconv"

	"go.creack.net/gocalc/lexer"
)

// ExprError is an error indicating a token in operand position that
// cannot begin an expression.
type ExprError struct {
	// Found is the offending token.
	Found lexer.Token
}

func (err *ExprError) Error() string {
	if err.Found.Type == lexer.TokEOF {
		return "expect expression, found end of input"
	}
	return "expect expression, found " + strconv.Quote(err.Found.Value)
}

// OperatorError is an error indicating a token in operator position
// that no infix rule accepts.
type OperatorError struct {
	// Found is the offending token.
	Found lexer.Token
}

func (err *OperatorError) Error() string {
	return "expect binary operator, found " + strconv.Quote(err.Found.Value)
}

// NumberError is an error indicating a number lexeme that does not
// convert to a value, like a dangling exponent.
type NumberError struct {
	// Lexeme is the text that failed the conversion.
	Lexeme string
}

func (err *NumberError) Error() string {
	return "invalid number literal " + strconv.Quote(err.Lexeme)
}

var (
	_ error = (*ExprError)(nil)
	_ error = (*OperatorError)(nil)
	_ error = (*NumberError)(nil)
)
