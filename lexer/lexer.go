// Package lexer provides a simple lexical analyzer for arithmetic expressions.
package lexer

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.creack.net/gocalc/diag"
)

type Lexer struct {
	*diag.Reporter

	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a Lexer for a single line of input.
// Lexical errors are reported to stderr, nil meaning os.Stderr.
func New(input string, stderr io.Writer) *Lexer {
	return &Lexer{
		Reporter: diag.NewReporter(stderr),
		input:    input,
	}
}

// Lex scans the whole line and returns the token sequence, terminated
// by an end-of-input token. After a lexical error the sequence holds
// only the tokens scanned before the bad character, without the end
// marker. Check HadError before handing the result to the parser.
func (l *Lexer) Lex() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return tokens
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "\x00", pos: l.pos}
	state := lexLine
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) emitEOF() stateFn {
	return l.emitToken(Token{Type: TokEOF, Value: "\x00", pos: l.pos})
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorToken(err error) stateFn {
	l.Report(err)
	l.curToken = Token{Type: TokError, Value: err.Error(), pos: l.pos}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// CharError is an error indicating a character the scanner does not
// recognize. It aborts the scan of the current line.
type CharError struct {
	// Col is the 0-based column of the character.
	Col int
	// Char is the unrecognized character.
	Char rune
}

func (err *CharError) Error() string {
	return "unexpected character at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(string(err.Char))
}

var _ error = (*CharError)(nil)
