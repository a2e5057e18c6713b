package lexer

import (
	"strconv"
	"strings"
)

type Lexer struct {
	input    string // line text to be tokenized
	length   int    // length of the line text
	position int    // current byte offset in the line text
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	l := &Lexer{}
	l.Init(s)
	return l
}

// Init points the lexer at a new line text and rewinds it
func (l *Lexer) Init(s string) {
	l.input = s
	l.length = len(s)
	l.position = 0
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of line
	if l.position >= l.length {
		tok := NewToken(EOL, "", "", l.currentPosition())
		return tok
	}

	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		tok := NewToken(ILLEGAL, lexeme, "", l.currentPosition())
		l.advance(len(lexeme))
		return tok
	}

	tok := NewToken(tokenType, lexeme, "", l.currentPosition())
	switch tokenType {
	case NUM:
		// the NUM pattern only matches valid float syntax
		tok.Number, _ = strconv.ParseFloat(lexeme, 64)
	case STRING:
		// Remove the surrounding quotes from the lexeme
		tok.Literal = lexeme[1 : len(lexeme)-1]
	case NUMVAR, TEXTVAR:
		tok.Literal = strings.ToUpper(lexeme)
	case REM:
		// the remainder of the line is commentary
		tok.Literal = strings.TrimSpace(l.input[l.position+len(lexeme):])
		l.position = l.length
		return tok
	default:
		tok.Literal = strings.ToUpper(lexeme)
	}

	l.advance(len(lexeme))

	return tok
}

// SetCursor repositions the lexer inside the current text. Offsets are clamped
// to the text bounds.
func (l *Lexer) SetCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > l.length {
		offset = l.length
	}
	l.position = offset
}

// Text returns the line text the lexer is reading
func (l *Lexer) Text() string {
	return l.input
}

// Rest returns the unread remainder of the line text
func (l *Lexer) Rest() string {
	return l.input[l.position:]
}

// Skip whitespace
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			break
		}
		l.position++
	}
}

// Advance the lexer position by n bytes
func (l *Lexer) advance(n int) {
	l.position += n
	if l.position > l.length {
		l.position = l.length
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Column: l.position + 1,
		Offset: l.position,
	}
}
