package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// precedence orders how tightly tokens bind, weakest first.
type precedence int

const (
	precNone precedence = iota
	precTerm
	precFactor
	precUnary
	precPrimary
)

type prefixHandler func(*Parser) ast.Expr
type infixHandler func(*Parser, ast.Expr) ast.Expr

// parseRule describes one token kind: how tightly it binds and how to
// parse it in prefix and infix position. A nil handler means the kind
// is not legal in that position.
type parseRule struct {
	prec   precedence
	prefix prefixHandler
	infix  infixHandler
}

type ruleTable map[lexer.TokenType]parseRule

func (p *Parser) rule(kind lexer.TokenType, prec precedence, prefix prefixHandler, infix infixHandler) {
	if _, ok := p.rules[kind]; ok {
		panic("duplicate parse rule")
	}
	p.rules[kind] = parseRule{prec: prec, prefix: prefix, infix: infix}
}

func (p *Parser) createRules() {
	p.rules = make(ruleTable)

	// Additive & multiplicative, the first two doubling as unary prefixes.
	p.rule(lexer.TokPlus, precTerm, parseUnaryExpr, parseBinaryExpr)
	p.rule(lexer.TokMinus, precTerm, parseUnaryExpr, parseBinaryExpr)
	p.rule(lexer.TokStar, precFactor, nil, parseBinaryExpr)
	p.rule(lexer.TokSlash, precFactor, nil, parseBinaryExpr)

	// Literals.
	p.rule(lexer.TokNumber, precPrimary, parsePrimaryExpr, nil)

	// End of input stops the climbing loop.
	p.rule(lexer.TokEOF, precNone, nil, nil)
}
