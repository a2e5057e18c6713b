package interpreter_test

import (
	"bytes"
	"minibasic/pkg/interpreter"
	"testing"
)

func newInterpreter(t *testing.T, opts ...interpreter.Option) (*interpreter.Interpreter, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	opts = append([]interpreter.Option{
		interpreter.WithWriter(&out),
		interpreter.WithMaxSteps(10000),
	}, opts...)

	it, err := interpreter.New(4096, 512, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return it, &out
}

func load(t *testing.T, it *interpreter.Interpreter, program ...string) {
	t.Helper()

	for _, line := range program {
		if err := it.SubmitLine(line); err != nil {
			t.Fatalf("SubmitLine(%q): %v", line, err)
		}
	}
}

func expectKind(t *testing.T, err error, kind interpreter.ErrorKind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got no error", kind)
	}
	if !interpreter.IsKind(err, kind) {
		t.Fatalf("expected %s, got %v", kind, err)
	}
}
