package lexer

type stateFn func(*Lexer) stateFn

func lexLine(l *Lexer) stateFn {
	if l.atEOF {
		return l.emitEOF()
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'-': TokMinus,
		'*': TokStar,
		'/': TokSlash,
	}

	// peek sets atEOF when the input runs out; a decoded NUL byte is an
	// ordinary illegal character.
	switch r := l.peek(); {
	case l.atEOF:
		return l.emitEOF()
	case r == ' ' || r == '\t':
		l.acceptRun(" \t")
		l.ignore()
		return lexLine
	case r >= '0' && r <= '9':
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorToken(&CharError{Col: l.pos, Char: r})
	}
}

func lexNumber(l *Lexer) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	if l.peek() == '.' {
		l.next()
		l.acceptRun(digits)
	}
	// Lowercase exponent only, sign optional. A dangling 'e' or sign
	// stays in the lexeme; the conversion in the parser rejects it.
	if l.peek() == 'e' {
		l.next()
		l.accept("+-")
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}
