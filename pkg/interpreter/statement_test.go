package interpreter_test

import (
	"errors"
	"minibasic/pkg/arena"
	"minibasic/pkg/interpreter"
	"testing"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`PRINT "HELLO"`, "HELLO\n"},
		{`PRINT 2+3*4`, "14.000000\n"},
		{`PRINT -0.5`, "-0.500000\n"},
		{`PRINT "A";`, "A"},
		{`PRINT "A";"B"`, "AB\n"},
		{`PRINT "A","B"`, "A\tB\n"},
		{`PRINT 1,`, "1.000000\t"},
		{`PRINT`, "\n"},
		{`PRINT "A" : PRINT "B"`, "A\nB\n"},
		{`A = 1 : B = 2 : PRINT A + B`, "3.000000\n"},
		{`LET A$ = "HI" : PRINT A$`, "HI\n"},
		{`REM PRINT "NOT SHOWN"`, ""},
	}

	for _, test := range tests {
		it, out := newInterpreter(t)
		if err := it.SubmitLine(test.input); err != nil {
			t.Errorf("%s: %v", test.input, err)
			continue
		}
		if out.String() != test.expected {
			t.Errorf("%s: expected %q, got %q", test.input, test.expected, out.String())
		}
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  interpreter.ErrorKind
	}{
		{`PRINT 1 2`, interpreter.KindSyntax},
		{`A = "X"`, interpreter.KindTypeMismatch},
		{`A$ = 1`, interpreter.KindTypeMismatch},
		{`A 1`, interpreter.KindSyntax},
		{`= 1`, interpreter.KindSyntax},
		{`INPUT A`, interpreter.KindSyntax},
		{`DIM A(10)`, interpreter.KindSyntax},
		{`PRINT #`, interpreter.KindSyntax},
		{`# PRINT`, interpreter.KindSyntax},
		{`IF 1 THEN PRINT "X"`, interpreter.KindSyntax},
		{`IF 1 = 1 PRINT "X"`, interpreter.KindSyntax},
		{`FOR 1 = 1 TO 2`, interpreter.KindSyntax},
		{`FOR I = 1 UNTIL 2`, interpreter.KindSyntax},
		{`GOTO 99`, interpreter.KindUndefinedReference},
		{`GOSUB 99`, interpreter.KindUndefinedReference},
		{`GOTO 1.5`, interpreter.KindSyntax},
		{`GOTO 0`, interpreter.KindSyntax},
		{`RETURN`, interpreter.KindFrameMismatch},
		{`NEXT`, interpreter.KindFrameMismatch},
		{`FOR I = 1 TO 2 : RETURN`, interpreter.KindFrameMismatch},
		{`FOR I = 1 TO 2 : NEXT J`, interpreter.KindFrameMismatch},
	}

	for _, test := range tests {
		it, _ := newInterpreter(t)
		err := it.SubmitLine(test.input)
		if !interpreter.IsKind(err, test.kind) {
			t.Errorf("%s: expected %s, got %v", test.input, test.kind, err)
		}
		if it.LastError() != err {
			t.Errorf("%s: LastError does not match returned error", test.input)
		}
	}
}

func TestReturnWithoutGosubLeavesStack(t *testing.T) {
	it, _ := newInterpreter(t)

	expectKind(t, it.SubmitLine(`FOR I = 1 TO 2 : RETURN`), interpreter.KindFrameMismatch)
	frames := it.Snapshot().Frames
	if len(frames) != 1 || frames[0].Kind() != interpreter.FrameLoop {
		t.Errorf("the loop frame must stay on the stack, got %v", frames)
	}
}

func TestLineStore(t *testing.T) {
	it, out := newInterpreter(t)

	load(t, it, `20 PRINT "B"`, `10 PRINT "A"`, `10 PRINT "C"`, "LIST")
	if expected := "10 PRINT \"C\"\n20 PRINT \"B\"\nREADY.\n"; out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}

	out.Reset()
	load(t, it, "10", "LIST")
	if expected := "20 PRINT \"B\"\nREADY.\n"; out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}

	out.Reset()
	load(t, it, "  30   END  ", "LIST")
	if expected := "20 PRINT \"B\"\n30 END\nREADY.\n"; out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestInvalidLineNumber(t *testing.T) {
	for _, line := range []string{"0 PRINT", "1.5 PRINT", "70000 PRINT"} {
		it, _ := newInterpreter(t)
		expectKind(t, it.SubmitLine(line), interpreter.KindSyntax)
	}
}

func TestOutOfMemory(t *testing.T) {
	it, err := interpreter.New(64, 32)
	if err != nil {
		t.Fatal(err)
	}

	load(t, it, `10 PRINT "0123456789"`)
	err = it.SubmitLine(`20 PRINT "0123456789"`)
	expectKind(t, err, interpreter.KindResource)
	if !errors.Is(err, arena.ErrOutOfMemory) {
		t.Errorf("expected ErrOutOfMemory cause, got %v", err)
	}
}

func TestClear(t *testing.T) {
	it, out := newInterpreter(t)

	load(t, it, `A = 3 : A$ = "X" : FOR I = 1 TO 5`, "CLEAR", `PRINT A; A$`)
	if out.String() != "0.000000\n" {
		t.Errorf("expected cleared variables, got %q", out.String())
	}
	if frames := it.Snapshot().Frames; len(frames) != 0 {
		t.Errorf("expected empty stack after CLEAR, got %d frames", len(frames))
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := interpreter.New(100, 100); err == nil {
		t.Error("stack as large as memory must be rejected")
	}
	if _, err := interpreter.New(0, 0); err == nil {
		t.Error("empty memory must be rejected")
	}
}

func TestErrorWording(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"LET 5 = 1", `syntax error: expected a variable, got literal "5"`},
		{"A = PRINT", `syntax error: unexpected keyword "PRINT"`},
		{"A$ = 1", `type mismatch: expected text expression, got literal "1"`},
		{"A = ", "syntax error: unexpected end of line"},
	}

	for _, test := range tests {
		it, _ := newInterpreter(t)
		err := it.SubmitLine(test.input)
		if err == nil {
			t.Errorf("%s: expected an error", test.input)
			continue
		}
		if err.Error() != test.expected {
			t.Errorf("%s: expected %q, got %q", test.input, test.expected, err.Error())
		}
	}
}
