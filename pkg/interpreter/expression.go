package interpreter

import (
	"minibasic/pkg/lexer"
)

// expression evaluates a text expression if one starts at the current token,
// a numeric expression otherwise.
func (i *Interpreter) expression() (Value, error) {
	s, ok, err := i.textExpression()
	if err != nil {
		return nil, err
	}
	if ok {
		return Text(s), nil
	}

	n, err := i.numericExpression()
	if err != nil {
		return nil, err
	}
	return Numeric(n), nil
}

// numericExpression = ["+"|"-"] term {("+"|"-"|"OR") term}
func (i *Interpreter) numericExpression() (float64, error) {
	negate := false
	if i.sym.Type == lexer.PLUS || i.sym.Type == lexer.MINUS {
		negate = i.sym.Type == lexer.MINUS
		i.next()
	}

	t1, err := i.term()
	if err != nil {
		return 0, err
	}
	if negate {
		t1 = -t1
	}

	for i.sym.Type == lexer.PLUS || i.sym.Type == lexer.MINUS || i.sym.Type == lexer.OR {
		op := i.sym.Type
		i.next()

		t2, err := i.term()
		if err != nil {
			return 0, err
		}

		switch op {
		case lexer.PLUS:
			t1 += t2
		case lexer.MINUS:
			t1 -= t2
		case lexer.OR:
			t1 = bitOr(t1, t2)
		}
	}

	return t1, nil
}

// term = factor {("*"|"/"|"AND") factor}
func (i *Interpreter) term() (float64, error) {
	f1, err := i.factor()
	if err != nil {
		return 0, err
	}

	for i.sym.Type == lexer.MULT || i.sym.Type == lexer.DIV || i.sym.Type == lexer.AND {
		op := i.sym.Type
		i.next()

		f2, err := i.factor()
		if err != nil {
			return 0, err
		}

		switch op {
		case lexer.MULT:
			f1 *= f2
		case lexer.DIV:
			f1 /= f2
		case lexer.AND:
			f1 = bitAnd(f1, f2)
		}
	}

	return f1, nil
}

// factor = func "(" numeric-expression ")" | number | "(" numeric-expression ")" | variable
func (i *Interpreter) factor() (float64, error) {
	switch {
	case i.sym.Type.IsNumericFunction():
		fn := i.sym.Type
		i.next()
		if err := i.expect(lexer.LPAREN); err != nil {
			return 0, err
		}
		arg, err := i.numericExpression()
		if err != nil {
			return 0, err
		}
		if err := i.expect(lexer.RPAREN); err != nil {
			return 0, err
		}
		return i.call(fn, arg), nil

	case i.sym.Type == lexer.NUM:
		n := i.sym.Number
		i.next()
		return n, nil

	case i.sym.Type == lexer.NUMVAR:
		n := i.vars.Numeric(i.sym.Literal)
		i.next()
		return n, nil

	case i.sym.Type == lexer.LPAREN:
		i.next()
		n, err := i.numericExpression()
		if err != nil {
			return 0, err
		}
		if err := i.expect(lexer.RPAREN); err != nil {
			return 0, err
		}
		return n, nil

	case i.startsText():
		return 0, i.fail(KindTypeMismatch, "expected numeric expression, got %s", describe(i.sym))
	}

	return 0, i.unexpected()
}

// startsText reports whether the current token begins a text expression
func (i *Interpreter) startsText() bool {
	switch i.sym.Type {
	case lexer.STRING, lexer.TEXTVAR, lexer.CHR, lexer.MID:
		return true
	}
	return false
}

// textExpression = text-term {"+" text-term}. ok is false when no text
// production starts at the current token; nothing is consumed in that case.
func (i *Interpreter) textExpression() (s string, ok bool, err error) {
	s, ok, err = i.textTerm()
	if err != nil || !ok {
		return s, ok, err
	}

	for i.sym.Type == lexer.PLUS {
		i.next()

		t, ok, err := i.textTerm()
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, i.fail(KindTypeMismatch, "expected text expression, got %s", describe(i.sym))
		}
		s += t
	}

	return s, true, nil
}

// textTerm = literal | text-variable | CHR$ "(" numeric ")" | MID$ "(" text "," numeric "," numeric ")"
func (i *Interpreter) textTerm() (string, bool, error) {
	switch i.sym.Type {
	case lexer.STRING:
		s := i.sym.Literal
		i.next()
		return s, true, nil

	case lexer.TEXTVAR:
		s := i.vars.Text(i.sym.Literal)
		i.next()
		return s, true, nil

	case lexer.CHR:
		i.next()
		if err := i.expect(lexer.LPAREN); err != nil {
			return "", false, err
		}
		code, err := i.numericExpression()
		if err != nil {
			return "", false, err
		}
		if err := i.expect(lexer.RPAREN); err != nil {
			return "", false, err
		}
		return chr(code), true, nil

	case lexer.MID:
		s, err := i.mid()
		return s, err == nil, err
	}

	return "", false, nil
}

// mid evaluates MID$(source, from, count): count bytes of source starting at
// the zero-based offset from, cut short at the end of source. A start outside
// the source or a negative count is an error.
func (i *Interpreter) mid() (string, error) {
	i.next()
	if err := i.expect(lexer.LPAREN); err != nil {
		return "", err
	}

	source, ok, err := i.textExpression()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", i.fail(KindTypeMismatch, "MID$ expects text, got %s", describe(i.sym))
	}

	if err := i.expect(lexer.COMMA); err != nil {
		return "", err
	}
	from, err := i.numericExpression()
	if err != nil {
		return "", err
	}

	if err := i.expect(lexer.COMMA); err != nil {
		return "", err
	}
	count, err := i.numericExpression()
	if err != nil {
		return "", err
	}

	if err := i.expect(lexer.RPAREN); err != nil {
		return "", err
	}

	start, n := int(toInt(from)), int(toInt(count))
	if start < 0 || n < 0 || start > len(source) {
		return "", i.fail(KindSyntax, "MID$ index out of range")
	}
	if start+n > len(source) {
		n = len(source) - start
	}

	return source[start : start+n], nil
}

// chr converts a character code to a one character string
func chr(code float64) string {
	switch c := toInt(code); c {
	case 205:
		return "/"
	case 206:
		return `\`
	default:
		return string([]byte{byte(c)})
	}
}
