package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual text from the line
	Literal string    // String payload: text literal contents or upper-cased variable name
	Number  float64   // Numeric payload for NUM tokens
	Pos     Position  // Position of the first byte of the token
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	FUNCTION
	VARIABLE
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOL TokenType = iota // end of the line text

	PRINT
	IF
	THEN
	GOTO
	GOSUB
	RETURN
	FOR
	TO
	STEP
	NEXT
	LET
	LIST
	RUN
	END
	CLEAR
	REM
	INPUT
	DIM

	ABS
	SIN
	COS
	TAN
	SQR
	LOG
	EXP
	ATN
	INT
	SGN
	NOT
	RND
	CHR // CHR$
	MID // MID$

	NUM     // numeric literal
	STRING  // text literal
	NUMVAR  // A..Z
	TEXTVAR // A$..Z$

	PLUS  // +
	MINUS // -
	MULT  // *
	DIV   // /
	AND   // AND
	OR    // OR
	EQ    // =
	LT    // <
	GT    // >
	LE    // <=
	GE    // >=

	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	LPAREN    // (
	RPAREN    // )

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"PRINT":  PRINT,
	"IF":     IF,
	"THEN":   THEN,
	"GOTO":   GOTO,
	"GOSUB":  GOSUB,
	"RETURN": RETURN,
	"FOR":    FOR,
	"TO":     TO,
	"STEP":   STEP,
	"NEXT":   NEXT,
	"LET":    LET,
	"LIST":   LIST,
	"RUN":    RUN,
	"END":    END,
	"CLEAR":  CLEAR,
	"REM":    REM,
	"INPUT":  INPUT,
	"DIM":    DIM,
	"ABS":    ABS,
	"SIN":    SIN,
	"COS":    COS,
	"TAN":    TAN,
	"SQR":    SQR,
	"LOG":    LOG,
	"EXP":    EXP,
	"ATN":    ATN,
	"INT":    INT,
	"SGN":    SGN,
	"NOT":    NOT,
	"RND":    RND,
	"CHR$":   CHR,
	"MID$":   MID,
	"AND":    AND,
	"OR":     OR,
}

var names = map[TokenType]string{
	EOL:       "end of line",
	NUM:       "number",
	STRING:    "string",
	NUMVAR:    "variable",
	TEXTVAR:   "string variable",
	PLUS:      "+",
	MINUS:     "-",
	MULT:      "*",
	DIV:       "/",
	EQ:        "=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	SEMICOLON: ";",
	COMMA:     ",",
	COLON:     ":",
	LPAREN:    "(",
	RPAREN:    ")",
	ILLEGAL:   "illegal",
}

func init() {
	for word, t := range Keywords {
		names[t] = word
	}
}

// String returns a string representation of the Token
func (t Token) String() string {
	switch t.Type {
	case NUM:
		return fmt.Sprintf("T_{%s, %v, %g, %s}", t.Type, t.Lexeme, t.Number, t.Pos)
	case STRING, NUMVAR, TEXTVAR:
		return fmt.Sprintf("T_{%s, %v, %q, %s}", t.Type, t.Lexeme, t.Literal, t.Pos)
	}

	return fmt.Sprintf("T_{%s, %v, nil, %s}", t.Type, t.Lexeme, t.Pos)
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := names[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch {
	case t >= PRINT && t <= DIM:
		return KEYWORD
	case t >= ABS && t <= MID:
		return FUNCTION
	case t == NUMVAR || t == TEXTVAR:
		return VARIABLE
	case t == NUM || t == STRING:
		return LITERAL
	case t >= PLUS && t <= GE:
		return OPERATOR
	case t >= SEMICOLON && t <= RPAREN:
		return DELIMITER
	default:
		return NONE
	}
}

func (c TokenCategory) String() string {
	switch c {
	case KEYWORD:
		return "keyword"
	case FUNCTION:
		return "function"
	case VARIABLE:
		return "variable"
	case LITERAL:
		return "literal"
	case OPERATOR:
		return "operator"
	case DELIMITER:
		return "delimiter"
	default:
		return "token"
	}
}

// IsNumericFunction reports whether t names a built-in numeric function
func (t TokenType) IsNumericFunction() bool {
	return t >= ABS && t <= RND
}

// IsStatementEnd reports whether t terminates a statement
func (t TokenType) IsStatementEnd() bool {
	return t == EOL || t == COLON
}

// IsKeyword checks if the given word is a keyword and returns its TokenType if it is
func IsKeyword(word string) (TokenType, bool) {
	tokenType, ok := Keywords[word]
	return tokenType, ok
}
