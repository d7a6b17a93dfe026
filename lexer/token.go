package lexer

import "fmt"

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:  "+",
	TokMinus: "-",
	TokStar:  "*",
	TokSlash: "/",
}

// Token represents a lexical token in an expression.
type Token struct {
	Type  TokenType
	Value string

	pos int
}

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR[%d]: %s", t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
