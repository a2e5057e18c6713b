package interpreter

import (
	"minibasic/pkg/lexer"

	"github.com/charmbracelet/log"
)

// Run executes the stored program from its first line, as the RUN statement does
func (i *Interpreter) Run() error {
	return i.SubmitLine("RUN")
}

// loop drives execution from the current token until the direct-mode text is
// exhausted, the program runs out of lines, or END is reached.
func (i *Interpreter) loop() error {
	for !i.stopped {
		switch i.sym.Type {
		case lexer.EOL:
			if !i.nextLine() {
				return nil
			}
			continue

		case lexer.COLON:
			i.next()
			continue
		}

		if err := i.step(); err != nil {
			return err
		}
	}

	return nil
}

// step executes one statement
func (i *Interpreter) step() error {
	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return i.wrap(KindResource, ErrMaxStepsExceeded)
	}
	i.steps++

	i.jumped = false
	if err := i.executeStatement(); err != nil {
		return err
	}

	// a relocated cursor may sit anywhere in the target line
	if i.jumped {
		return nil
	}
	return i.expectStatementEnd()
}

// nextLine moves to the stored line following the active one. It reports
// false when there is nothing left to execute.
func (i *Interpreter) nextLine() bool {
	if i.line == 0 {
		return false
	}

	n, ok := i.lines.Next(i.line)
	if !ok {
		i.finish()
		return false
	}

	text, _ := i.lines.Get(n)
	i.line = n
	i.lex.Init(text)
	i.next()

	return true
}

// finish leaves the running state
func (i *Interpreter) finish() {
	if !i.running {
		return
	}

	log.Debug("Program finished", "line", i.line)
	i.running = false
	i.ready()
}

// textOf returns the text addressed by a line number, 0 being the direct-mode text
func (i *Interpreter) textOf(n int) (string, bool) {
	if n == 0 {
		return i.direct, true
	}
	return i.lines.Get(n)
}

// resumable checks that pos still addresses the text it was taken from
func (i *Interpreter) resumable(pos Position) error {
	text, ok := i.textOf(pos.Line)
	if !ok {
		return i.fail(KindUndefinedReference, "line %d not found", pos.Line)
	}
	if pos.Version != i.versions[pos.Line] {
		if pos.Line == 0 {
			return i.fail(KindFrameMismatch, "direct-mode text was replaced")
		}
		return i.fail(KindUndefinedReference, "line %d was changed", pos.Line)
	}
	if pos.Offset < 0 || pos.Offset > len(text) {
		return i.fail(KindUndefinedReference, "offset %d outside line %d", pos.Offset, pos.Line)
	}
	return nil
}

// relocate points the cursor at pos and reads the token found there
func (i *Interpreter) relocate(pos Position) error {
	if err := i.resumable(pos); err != nil {
		return err
	}

	text, _ := i.textOf(pos.Line)
	i.line = pos.Line
	i.running = pos.Line != 0
	i.lex.Init(text)
	i.lex.SetCursor(pos.Offset)
	i.next()
	i.jumped = true

	return nil
}

// jump continues execution at the start of stored line n
func (i *Interpreter) jump(n int) error {
	if _, ok := i.lines.Get(n); !ok {
		return i.fail(KindUndefinedReference, "line %d not found", n)
	}

	log.Debug("Jump", "from", i.line, "to", n)
	return i.relocate(i.at(n))
}

// here is the position of the current token
func (i *Interpreter) here() Position {
	return Position{Line: i.line, Offset: i.sym.Pos.Offset, Version: i.versions[i.line]}
}

// at is the start of line n
func (i *Interpreter) at(n int) Position {
	return Position{Line: n, Version: i.versions[n]}
}

// skipLoop moves past the NEXT matching a FOR whose body must not run
func (i *Interpreter) skipLoop(name string) error {
	depth := 0
	for {
		switch i.sym.Type {
		case lexer.EOL:
			if i.line == 0 {
				return i.fail(KindSyntax, "FOR without NEXT")
			}
			n, ok := i.lines.Next(i.line)
			if !ok {
				return i.fail(KindSyntax, "FOR without NEXT")
			}
			text, _ := i.lines.Get(n)
			i.line = n
			i.lex.Init(text)

		case lexer.FOR:
			depth++

		case lexer.NEXT:
			if depth > 0 {
				depth--
				break
			}

			i.next()
			if i.sym.Type == lexer.NUMVAR {
				if i.sym.Literal != name {
					return i.fail(KindFrameMismatch, "NEXT %s does not match FOR %s", i.sym.Literal, name)
				}
				i.next()
			}
			i.jumped = true
			return nil
		}

		i.next()
	}
}
