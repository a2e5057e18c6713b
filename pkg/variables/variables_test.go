package variables_test

import (
	"minibasic/pkg/variables"
	"testing"
)

func TestVariables(t *testing.T) {
	s := variables.NewStore()

	if got := s.Numeric("A"); got != 0 {
		t.Errorf("unset numeric should read 0, got %g", got)
	}
	if got := s.Text("A$"); got != "" {
		t.Errorf("unset text should read empty, got %q", got)
	}

	s.SetNumeric("a", 1)
	s.SetNumeric("A", 2)
	s.SetText("a$", "x")

	if got := s.Numeric("A"); got != 2 {
		t.Errorf("expected overwritten value 2, got %g", got)
	}
	if got := s.Text("A$"); got != "x" {
		t.Errorf("expected x, got %q", got)
	}

	names := s.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "A$" {
		t.Errorf("unexpected names %v", names)
	}

	s.Clear()
	if len(s.Names()) != 0 {
		t.Error("expected no variables after Clear")
	}
}
