package session_test

import (
	"bytes"
	"minibasic/internal/session"
	"minibasic/pkg/interpreter"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPipedREPL(t *testing.T) {
	var out bytes.Buffer
	s := session.Session{
		NoColor: true,
		Stdin:   strings.NewReader("10 PRINT 2\n\nRUN\nRETURN\nPRINT \"OK\"\n"),
		Stdout:  &out,
	}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	expected := "READY.\n2.000000\nREADY.\nframe mismatch: RETURN without GOSUB\nREADY.\nOK\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestRunSourceFile(t *testing.T) {
	path := writeFile(t, "prog.bas", "10 LET A = 1\r\n20 PRINT A + 2\n\n30 END\n")

	var out bytes.Buffer
	s := session.Session{
		NoColor:    true,
		ShouldRun:  true,
		SourceFile: path,
		Stdout:     &out,
	}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3.000000\nREADY.\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestSourceFileError(t *testing.T) {
	path := writeFile(t, "bad.bas", "10 PRINT 1\nRETURN\n")

	s := session.Session{
		NoColor:    true,
		SourceFile: path,
		Stdout:     &bytes.Buffer{},
	}

	err := s.Run()
	if !interpreter.IsKind(err, interpreter.KindFrameMismatch) {
		t.Fatalf("expected a frame mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad.bas:2") {
		t.Errorf("expected the file position in %q", err.Error())
	}
}

func TestEvaluate(t *testing.T) {
	var out bytes.Buffer
	s := session.Session{
		NoColor: true,
		Eval:    "1+2*3",
		Stdout:  &out,
	}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "1+2*3 = 7.000000\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "basic.yaml", "max_steps: 5\ncolor: false\n")

	var out bytes.Buffer
	s := session.Session{
		ConfigFile: path,
		Stdin:      strings.NewReader("10 GOTO 10\nRUN\n"),
		Stdout:     &out,
	}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), interpreter.ErrMaxStepsExceeded.Error()) {
		t.Errorf("expected the step limit to be reported, got %q", out.String())
	}
	if s.Interpreter().Running() {
		t.Error("interpreter should have left the running state")
	}

	missing := session.Session{ConfigFile: filepath.Join(t.TempDir(), "none.yaml"), Stdout: &bytes.Buffer{}}
	if err := missing.Run(); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestDumpGoesToSessionOutput(t *testing.T) {
	var out bytes.Buffer
	s := session.Session{
		NoColor: true,
		Dump:    true,
		Stdin:   strings.NewReader("RETURN\n"),
		Stdout:  &out,
	}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	report := "READY.\nframe mismatch: RETURN without GOSUB\n"
	got := out.String()
	if !strings.HasPrefix(got, report) || !strings.HasSuffix(got, "READY.\n") {
		t.Fatalf("unexpected output %q", got)
	}
	if len(got) <= len(report)+len("READY.\n") {
		t.Errorf("expected the state dump between the error and READY., got %q", got)
	}
}
