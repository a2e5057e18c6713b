package lexer_test

import (
	"minibasic/pkg/lexer"
	"testing"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		input       string
		expected    float64
		description string
	}{
		{"42", 42, "integer"},
		{"0", 0, "zero"},

		{"3.14", 3.14, "simple float"},
		{"0.5", 0.5, "float starting with zero"},
		{".5", 0.5, "float without leading digit"},
		{"10.", 10, "float with trailing dot"},

		{"1e5", 1e5, "scientific notation with e"},
		{"1e+5", 1e5, "scientific notation with e+"},
		{"1e-5", 1e-5, "scientific notation with e-"},
		{"2.5E10", 2.5e10, "float with scientific notation E"},
		{"3.14E-2", 3.14e-2, "float with negative exponent E"},

		{"1000000", 1000000, "large integer"},
	}

	for _, test := range tests {
		tokenType, lexeme, matched := lexer.MatchToken(test.input)
		if !matched {
			t.Errorf("Failed to match %s (%s)", test.input, test.description)
		}
		if tokenType != lexer.NUM {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, lexer.NUM, tokenType)
		}
		if lexeme != test.input {
			t.Errorf("Input %s (%s): expected lexeme %s, got %s", test.input, test.description, test.input, lexeme)
		}

		tok := lexer.NewLexer(test.input).NextToken()
		if tok.Number != test.expected {
			t.Errorf("Input %s (%s): expected value %g, got %g", test.input, test.description, test.expected, tok.Number)
		}
	}
}
