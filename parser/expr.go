package parser

import (
	"errors"
	"strconv"

	"go.creack.net/gocalc/ast"
)

func parsePrimaryExpr(p *Parser) ast.Expr {
	tok := p.previous()
	// Out of range is not malformed: ParseFloat still returns the
	// saturated IEEE value.
	number, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.Report(&NumberError{Lexeme: tok.Value})
		return nil
	}
	return ast.Literal{Value: number}
}

func parseUnaryExpr(p *Parser) ast.Expr {
	op := p.previous()
	right := p.parsePrecedence(precUnary)
	if right == nil {
		return nil
	}
	return ast.Unary{Op: op.Type, Right: right}
}

func parseBinaryExpr(p *Parser, left ast.Expr) ast.Expr {
	op := p.previous()
	// One above the operator's own level, so equal levels fold left.
	right := p.parsePrecedence(p.rules[op.Type].prec + 1)
	if right == nil {
		return nil
	}
	return ast.Binary{Left: left, Op: op.Type, Right: right}
}
