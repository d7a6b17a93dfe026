// Package parser builds expression trees from token sequences with a
// Pratt style precedence climbing parser.
package parser

import (
	"io"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/diag"
	"go.creack.net/gocalc/lexer"
)

type Parser struct {
	*diag.Reporter

	tokens []lexer.Token
	pos    int

	rules ruleTable
}

// New creates a Parser over a token sequence produced by the lexer.
// Syntax errors are reported to stderr, nil meaning os.Stderr.
func New(tokens []lexer.Token, stderr io.Writer) *Parser {
	p := &Parser{
		Reporter: diag.NewReporter(stderr),
		tokens:   tokens,
	}
	p.createRules()
	return p
}

// Parse consumes the token sequence and returns the resulting tree.
// After a syntax error the result is nil. Check HadError before using
// the tree.
func (p *Parser) Parse() ast.Expr {
	return p.parsePrecedence(precTerm)
}

// parsePrecedence parses the next expression made of tokens binding at
// least as tightly as min. The leading token must have a prefix rule;
// the loop then folds every following token whose rule binds at min or
// tighter, using its infix rule.
func (p *Parser) parsePrecedence(min precedence) ast.Expr {
	tok := p.advance()
	rule := p.rules[tok.Type]
	if rule.prefix == nil {
		p.Report(&ExprError{Found: tok})
		return nil
	}
	left := rule.prefix(p)

	for !p.HadError() && p.rules[p.peek().Type].prec >= min {
		tok = p.advance()
		rule = p.rules[tok.Type]
		if rule.infix == nil {
			p.Report(&OperatorError{Found: tok})
			return nil
		}
		left = rule.infix(p, left)
	}

	return left
}

// advance returns the current token and moves the cursor. Past the
// end it keeps yielding an end-of-input token, even when the sequence
// lacks its end marker.
func (p *Parser) advance() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF, Value: "\x00"}
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF, Value: "\x00"}
	}
	return p.tokens[p.pos]
}

// previous returns the token advance consumed last. Handlers run only
// after such a token exists.
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}
