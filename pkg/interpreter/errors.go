package interpreter

import (
	"errors"
	"fmt"

	"minibasic/pkg/lexer"
)

type ErrorKind int

const (
	KindSyntax             ErrorKind = iota // expected token absent
	KindUndefinedReference                  // jump to a line that is not stored
	KindStackExhausted                      // frame push would collide with program text
	KindFrameMismatch                       // RETURN/NEXT found the wrong frame
	KindTypeMismatch                        // numeric used where text is required or vice versa
	KindResource                            // memory or step budget exceeded
)

var ErrMaxStepsExceeded = errors.New("maximum steps exceeded")

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindUndefinedReference:
		return "undefined line"
	case KindStackExhausted:
		return "stack exhausted"
	case KindFrameMismatch:
		return "frame mismatch"
	case KindTypeMismatch:
		return "type mismatch"
	case KindResource:
		return "out of resources"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// Error is a failure raised while evaluating or executing BASIC code. A
// statement either completes or the whole execution stops with an Error.
type Error struct {
	Kind ErrorKind
	Msg  string
	Line int   // stored line being executed, 0 in direct mode
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Msg
	if e.Line > 0 {
		msg += fmt.Sprintf(" in %d", e.Line)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an interpreter Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// fail builds an Error located at the line being executed
func (i *Interpreter) fail(kind ErrorKind, format string, args ...any) error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Line: i.line,
	}
}

// wrap builds an Error carrying cause
func (i *Interpreter) wrap(kind ErrorKind, cause error) error {
	return &Error{
		Kind: kind,
		Msg:  cause.Error(),
		Line: i.line,
		Err:  cause,
	}
}

// unexpected reports the current token as a syntax error
func (i *Interpreter) unexpected() error {
	return i.fail(KindSyntax, "unexpected %s", describe(i.sym))
}

// describe renders a token for error messages, e.g. `literal "5"`
func describe(tok lexer.Token) string {
	if tok.Type == lexer.EOL || tok.Lexeme == "" {
		return tok.Type.String()
	}

	if c := tok.Type.GetCategory(); c != lexer.NONE {
		return fmt.Sprintf("%s %q", c, tok.Lexeme)
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
