package interpreter

import (
	"fmt"
	"math"
	"strings"

	"minibasic/pkg/lexer"
)

type ValueKind int

const (
	KindNumeric ValueKind = iota
	KindText
)

func (k ValueKind) String() string {
	if k == KindText {
		return "text"
	}
	return "numeric"
}

// Value is the result of evaluating an expression. It is either a Numeric or
// a Text; no other implementations exist.
type Value interface {
	Kind() ValueKind
	String() string
	isValue()
}

type Numeric float64

type Text string

func (Numeric) Kind() ValueKind { return KindNumeric }
func (Text) Kind() ValueKind    { return KindText }
func (Numeric) isValue()        {}
func (Text) isValue()           {}

// String renders the number the way PRINT shows it
func (n Numeric) String() string {
	return fmt.Sprintf("%f", float64(n))
}

func (t Text) String() string {
	return string(t)
}

// toInt truncates toward zero and keeps the low 32 bits, the integer domain
// of the bitwise operators and NOT.
func toInt(f float64) int32 {
	if math.IsNaN(f) {
		return 0
	}
	return int32(int64(f))
}

func bitAnd(a, b float64) float64 {
	return float64(toInt(a) & toInt(b))
}

func bitOr(a, b float64) float64 {
	return float64(toInt(a) | toInt(b))
}

func bitNot(a float64) float64 {
	return float64(^toInt(a))
}

// compare applies a relational operator to two values of the same kind
func (i *Interpreter) compare(left, right Value, op lexer.TokenType) (bool, error) {
	var c int
	switch l := left.(type) {
	case Numeric:
		r, ok := right.(Numeric)
		if !ok {
			return false, i.fail(KindTypeMismatch, "illegal right hand type, expected numeric")
		}
		switch op {
		case lexer.LT:
			return l < r, nil
		case lexer.LE:
			return l <= r, nil
		case lexer.EQ:
			return l == r, nil
		case lexer.GE:
			return l >= r, nil
		case lexer.GT:
			return l > r, nil
		}

	case Text:
		r, ok := right.(Text)
		if !ok {
			return false, i.fail(KindTypeMismatch, "illegal right hand type, expected text")
		}
		c = strings.Compare(string(l), string(r))
		switch op {
		case lexer.LT:
			return c < 0, nil
		case lexer.LE:
			return c <= 0, nil
		case lexer.EQ:
			return c == 0, nil
		case lexer.GE:
			return c >= 0, nil
		case lexer.GT:
			return c > 0, nil
		}
	}

	return false, i.fail(KindSyntax, "no valid relation operator found")
}
