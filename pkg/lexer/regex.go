package lexer

import (
	"regexp"
	"sort"
	"strings"
)

// Token regex patterns for everything that is not a keyword
var tokenRegexes = map[TokenType]*regexp.Regexp{
	LE: regexp.MustCompile(`^<=`),
	GE: regexp.MustCompile(`^>=`),

	EQ:    regexp.MustCompile(`^=`),
	PLUS:  regexp.MustCompile(`^\+`),
	MINUS: regexp.MustCompile(`^-`),
	MULT:  regexp.MustCompile(`^\*`),
	DIV:   regexp.MustCompile(`^/`),
	LT:    regexp.MustCompile(`^<`),
	GT:    regexp.MustCompile(`^>`),

	SEMICOLON: regexp.MustCompile(`^;`),
	COMMA:     regexp.MustCompile(`^,`),
	COLON:     regexp.MustCompile(`^:`),
	LPAREN:    regexp.MustCompile(`^\(`),
	RPAREN:    regexp.MustCompile(`^\)`),

	NUM:     regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`),
	STRING:  regexp.MustCompile(`^"[^"]*"`),
	TEXTVAR: regexp.MustCompile(`^[a-zA-Z]\$`),
	NUMVAR:  regexp.MustCompile(`^[a-zA-Z]`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^[ \t\r\n]+`)
	keywordRegex    = buildKeywordRegex()
)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	LE, GE, EQ, PLUS, MINUS, MULT, DIV, LT, GT,
	SEMICOLON, COMMA, COLON, LPAREN, RPAREN,
	NUM, STRING, TEXTVAR, NUMVAR,
}

// buildKeywordRegex builds one case-insensitive alternation of all keywords,
// longest first so that no keyword shadows a longer one.
func buildKeywordRegex() *regexp.Regexp {
	words := make([]string, 0, len(Keywords))
	for word := range Keywords {
		words = append(words, regexp.QuoteMeta(word))
	}
	sort.Slice(words, func(a, b int) bool {
		if len(words[a]) != len(words[b]) {
			return len(words[a]) > len(words[b])
		}
		return words[a] < words[b]
	})

	return regexp.MustCompile(`^(?i)(` + strings.Join(words, "|") + `)`)
}

// Match the token at the start of the string. Whitespace matches as EOL with a
// non-empty lexeme so the caller can skip it.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOL, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOL, match, true
	}

	if match := keywordRegex.FindString(s); match != "" {
		tokenType, _ := IsKeyword(strings.ToUpper(match))
		return tokenType, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}
