package interpreter

import (
	"math"
	"math/rand"

	"minibasic/pkg/lexer"
)

var functions = map[lexer.TokenType]func(float64) float64{
	lexer.ABS: math.Abs,
	lexer.SIN: math.Sin,
	lexer.COS: math.Cos,
	lexer.TAN: math.Tan,
	lexer.SQR: math.Sqrt,
	lexer.LOG: math.Log,
	lexer.EXP: math.Exp,
	lexer.ATN: math.Atan,
	lexer.INT: math.Trunc,
	lexer.SGN: sgn,
	lexer.NOT: bitNot,
}

// call applies the built-in numeric function fn
func (i *Interpreter) call(fn lexer.TokenType, arg float64) float64 {
	if fn == lexer.RND {
		return i.rnd(arg)
	}
	return functions[fn](arg)
}

func sgn(n float64) float64 {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// rnd returns a uniform number in [0,1) for a positive argument. Zero derives
// a value from the wall clock seconds, the same for the whole second. A
// negative argument reseeds the generator with its truncated value.
func (i *Interpreter) rnd(n float64) float64 {
	switch {
	case n > 0:
		return i.rng.Float64()
	case n < 0:
		i.rng = rand.New(rand.NewSource(int64(toInt(n))))
		return i.rnd(1)
	default:
		return float64(i.now().Second()) / 60
	}
}
