package interpreter

import (
	"errors"
	"fmt"
	"math"

	"minibasic/pkg/arena"
	"minibasic/pkg/lexer"
	"minibasic/pkg/lines"

	"github.com/charmbracelet/log"
)

// executeStatement dispatches on the current token and consumes one statement
func (i *Interpreter) executeStatement() error {
	switch i.sym.Type {
	case lexer.LIST:
		return i.doList()
	case lexer.PRINT:
		return i.doPrint()
	case lexer.GOTO:
		return i.doGoto()
	case lexer.GOSUB:
		return i.doGosub()
	case lexer.RETURN:
		return i.doReturn()
	case lexer.RUN:
		return i.doRun()
	case lexer.IF:
		return i.doIf()
	case lexer.FOR:
		return i.doFor()
	case lexer.NEXT:
		return i.doNext()
	case lexer.END:
		i.next()
		i.stopped = true
		i.finish()
		return nil
	case lexer.CLEAR:
		i.next()
		i.vars.Clear()
		i.stack.Reset()
		return nil
	case lexer.REM:
		i.next()
		return nil
	case lexer.INPUT, lexer.DIM:
		return i.fail(KindSyntax, "%s is not implemented", i.sym.Type)
	case lexer.ILLEGAL:
		return i.fail(KindSyntax, "illegal character %s", describe(i.sym))
	case lexer.LET:
		i.next()
	}

	return i.doLet()
}

func (i *Interpreter) doList() error {
	i.next()
	i.lines.List(func(n int, text string) {
		fmt.Fprintf(i.out, "%d %s\n", n, text)
	})
	i.ready()
	return nil
}

// doPrint prints expressions separated by ";" (adjacent) or "," (tab). A
// trailing separator suppresses the newline.
func (i *Interpreter) doPrint() error {
	i.next()

	newline := true
items:
	for !i.sym.Type.IsStatementEnd() {
		v, err := i.expression()
		if err != nil {
			return err
		}
		fmt.Fprint(i.out, v.String())
		newline = true

		switch i.sym.Type {
		case lexer.SEMICOLON:
			i.next()
			newline = false
		case lexer.COMMA:
			i.next()
			fmt.Fprint(i.out, "\t")
			newline = false
		default:
			break items
		}
	}

	if newline {
		fmt.Fprintln(i.out)
	}
	return nil
}

// lineNumber evaluates a jump target
func (i *Interpreter) lineNumber() (int, error) {
	v, err := i.numericExpression()
	if err != nil {
		return 0, err
	}

	n := int(v)
	if v != math.Trunc(v) || !lines.ValidNumber(n) {
		return 0, i.fail(KindSyntax, "invalid line number %g", v)
	}
	return n, nil
}

func (i *Interpreter) doGoto() error {
	i.next()

	n, err := i.lineNumber()
	if err != nil {
		return err
	}
	return i.jump(n)
}

func (i *Interpreter) doGosub() error {
	i.next()

	n, err := i.lineNumber()
	if err != nil {
		return err
	}
	if err := i.expectStatementEnd(); err != nil {
		return err
	}
	if _, ok := i.lines.Get(n); !ok {
		return i.fail(KindUndefinedReference, "line %d not found", n)
	}

	if err := i.push(&CallFrame{Resume: i.here()}); err != nil {
		return err
	}
	return i.jump(n)
}

func (i *Interpreter) doReturn() error {
	i.next()

	top := i.stack.Peek()
	if top == nil || top.Kind() != FrameCall {
		return i.mismatch(top, FrameCall)
	}

	f := i.stack.Pop().(*CallFrame)
	log.Debug("Return", "line", f.Resume.Line)
	return i.relocate(f.Resume)
}

func (i *Interpreter) doRun() error {
	i.next()
	i.stack.Reset()

	var (
		start int
		ok    bool
	)
	if i.sym.Type.IsStatementEnd() {
		start, ok = i.lines.First()
	} else {
		n, err := i.lineNumber()
		if err != nil {
			return err
		}
		start = n
		_, ok = i.lines.Get(n)
		if !ok {
			return i.fail(KindUndefinedReference, "line %d not found", n)
		}
	}

	if !ok {
		i.running = false
		i.stopped = true
		i.ready()
		return nil
	}

	log.Debug("Run", "line", start)
	return i.relocate(i.at(start))
}

func (i *Interpreter) doIf() error {
	i.next()

	left, err := i.expression()
	if err != nil {
		return err
	}

	op := i.sym.Type
	switch op {
	case lexer.LT, lexer.LE, lexer.EQ, lexer.GE, lexer.GT:
		i.next()
	default:
		return i.fail(KindSyntax, "no valid relation operator found")
	}

	right, err := i.expression()
	if err != nil {
		return err
	}

	if i.sym.Type != lexer.THEN {
		return i.fail(KindSyntax, "IF without THEN")
	}

	ok, err := i.compare(left, right, op)
	if err != nil {
		return err
	}
	i.next()

	if !ok {
		// a false condition skips the rest of the line
		i.lex.SetCursor(len(i.lex.Text()))
		i.next()
		return nil
	}

	if i.sym.Type == lexer.NUM {
		return i.doGotoTarget()
	}
	return i.executeStatement()
}

// doGotoTarget handles the implied GOTO of IF ... THEN n
func (i *Interpreter) doGotoTarget() error {
	n, err := i.lineNumber()
	if err != nil {
		return err
	}
	return i.jump(n)
}

func (i *Interpreter) doFor() error {
	i.next()

	if i.sym.Type != lexer.NUMVAR {
		return i.fail(KindSyntax, "variable expected")
	}
	name := i.sym.Literal
	i.next()

	if err := i.expect(lexer.EQ); err != nil {
		return err
	}
	start, err := i.numericExpression()
	if err != nil {
		return err
	}
	i.vars.SetNumeric(name, start)

	if err := i.expect(lexer.TO); err != nil {
		return err
	}
	end, err := i.numericExpression()
	if err != nil {
		return err
	}

	step := 1.0
	if !i.sym.Type.IsStatementEnd() {
		if err := i.expect(lexer.STEP); err != nil {
			return err
		}
		if step, err = i.numericExpression(); err != nil {
			return err
		}
		if err := i.expectStatementEnd(); err != nil {
			return err
		}
	}

	f := &LoopFrame{
		Var:    name,
		End:    end,
		Step:   step,
		Line:   i.line,
		Resume: i.here(),
	}

	if f.passed(start) {
		return i.skipLoop(name)
	}
	return i.push(f)
}

func (i *Interpreter) doNext() error {
	i.next()

	top := i.stack.Peek()
	if top == nil || top.Kind() != FrameLoop {
		return i.mismatch(top, FrameLoop)
	}
	f := top.(*LoopFrame)

	if i.sym.Type == lexer.NUMVAR {
		if i.sym.Literal != f.Var {
			return i.fail(KindFrameMismatch, "NEXT %s does not match FOR %s", i.sym.Literal, f.Var)
		}
		i.next()
	}
	if err := i.expectStatementEnd(); err != nil {
		return err
	}

	v := i.vars.Numeric(f.Var) + f.Step
	if f.passed(v) {
		i.stack.Pop()
		return nil
	}

	// a loop whose body text is gone can never resume
	if err := i.resumable(f.Resume); err != nil {
		i.stack.Pop()
		return err
	}

	i.vars.SetNumeric(f.Var, v)
	return i.relocate(f.Resume)
}

func (i *Interpreter) doLet() error {
	switch i.sym.Type {
	case lexer.NUMVAR:
		name := i.sym.Literal
		i.next()
		if err := i.expect(lexer.EQ); err != nil {
			return err
		}
		v, err := i.numericExpression()
		if err != nil {
			return err
		}
		i.vars.SetNumeric(name, v)

	case lexer.TEXTVAR:
		name := i.sym.Literal
		i.next()
		if err := i.expect(lexer.EQ); err != nil {
			return err
		}
		s, ok, err := i.textExpression()
		if err != nil {
			return err
		}
		if !ok {
			return i.fail(KindTypeMismatch, "expected text expression, got %s", describe(i.sym))
		}
		i.vars.SetText(name, s)

	default:
		return i.fail(KindSyntax, "expected a variable, got %s", describe(i.sym))
	}

	return nil
}

// push adds a frame to the control stack
func (i *Interpreter) push(f Frame) error {
	if err := i.stack.Push(f); err != nil {
		if errors.Is(err, arena.ErrStackTooSmall) {
			return i.wrap(KindStackExhausted, err)
		}
		return i.wrap(KindResource, err)
	}

	log.Debug("Push frame", "kind", f.Kind(), "depth", i.stack.Size())
	return nil
}

// mismatch reports a RETURN or NEXT that found the wrong frame on top
func (i *Interpreter) mismatch(top Frame, want FrameKind) error {
	var stmt string
	switch want {
	case FrameCall:
		stmt = "RETURN without GOSUB"
	default:
		stmt = "NEXT without FOR"
	}

	if top == nil {
		return i.fail(KindFrameMismatch, "%s", stmt)
	}
	return i.fail(KindFrameMismatch, "%s, found %s frame", stmt, top.Kind())
}
