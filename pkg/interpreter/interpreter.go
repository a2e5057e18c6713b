package interpreter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"minibasic/pkg/arena"
	"minibasic/pkg/lexer"
	"minibasic/pkg/lines"
	"minibasic/pkg/variables"

	"github.com/charmbracelet/log"
)

// LineStore is the numbered program storage the interpreter executes from
type LineStore interface {
	First() (int, bool)
	Next(after int) (int, bool)
	Get(n int) (string, bool)
	Store(n int, text string) error
	Delete(n int)
	List(visit func(n int, text string))
}

// VariableStore binds variable names to values
type VariableStore interface {
	Numeric(name string) float64
	SetNumeric(name string, v float64)
	Text(name string) string
	SetText(name string, v string)
	Clear()
	Names() []string
}

// Interpreter executes BASIC directly from the token stream of stored lines
type Interpreter struct {
	lex *lexer.Lexer // token source over the active line text
	sym lexer.Token  // current token

	arena *arena.Arena
	lines LineStore
	vars  VariableStore
	stack *Stack

	line    int    // active line, 0 while executing direct-mode text
	direct  string // text of the last direct-mode submission
	running bool   // a stored program is executing
	stopped bool   // END reached, leave the run loop
	jumped  bool   // last statement relocated the cursor

	out io.Writer // output writer for PRINT and LIST

	rng *rand.Rand
	now func() time.Time

	maxSteps int // maximum statements per submission (0 = unlimited)
	steps    int // statements executed in the current submission

	revision uint64         // bumped on every line edit and direct submission
	versions map[int]uint64 // revision per line number, 0 being the direct text

	lastErr error
}

type Option func(*Interpreter)

// WithWriter sets the output writer for PRINT and LIST
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMaxSteps sets a maximum number of statements a submitted line may execute
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithSeed seeds the RND generator
func WithSeed(seed int64) Option {
	return func(i *Interpreter) { i.rng = rand.New(rand.NewSource(seed)) }
}

// WithClock replaces the wall clock used by RND(0)
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) { i.now = now }
}

// New creates an interpreter whose program text and control stack share
// memorySize bytes, stackSize of which are reserved for the stack.
func New(memorySize, stackSize int, opts ...Option) (*Interpreter, error) {
	a, err := arena.New(memorySize, stackSize)
	if err != nil {
		return nil, err
	}

	it := &Interpreter{
		lex:   lexer.NewLexer(""),
		arena: a,
		lines: lines.NewStore(a),
		vars:  variables.NewStore(),
		stack: NewStack(a),

		versions: make(map[int]uint64),
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}
	if it.rng == nil {
		it.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if it.now == nil {
		it.now = time.Now
	}

	return it, nil
}

// Output returns the output writer
func (i *Interpreter) Output() io.Writer {
	return i.out
}

// Running reports whether a stored program is executing
func (i *Interpreter) Running() bool {
	return i.running
}

// LastError returns the error of the most recent SubmitLine or Evaluate call
func (i *Interpreter) LastError() error {
	return i.lastErr
}

// SubmitLine handles one line of input. A line starting with a number is
// stored under that number, or deletes it when nothing follows the number.
// Anything else is executed immediately.
func (i *Interpreter) SubmitLine(text string) error {
	i.lastErr = nil
	i.line = 0
	i.lex.Init(text)
	i.next()

	var err error
	if i.sym.Type == lexer.NUM {
		err = i.storeLine(i.sym.Number, strings.TrimSpace(i.lex.Rest()))
	} else {
		err = i.executeDirect(text)
	}

	if err != nil {
		i.lastErr = err
	}
	return err
}

func (i *Interpreter) storeLine(number float64, text string) error {
	n := int(number)
	if number != math.Trunc(number) || !lines.ValidNumber(n) {
		return i.fail(KindSyntax, "invalid line number %g", number)
	}

	if text == "" {
		i.lines.Delete(n)
		delete(i.versions, n)
		log.Debug("Deleted line", "line", n)
		return nil
	}

	if err := i.lines.Store(n, text); err != nil {
		if errors.Is(err, arena.ErrOutOfMemory) {
			return i.wrap(KindResource, err)
		}
		return i.fail(KindSyntax, "%v", err)
	}

	i.revision++
	i.versions[n] = i.revision

	log.Debug("Stored line", "line", n, "text", text)
	return nil
}

func (i *Interpreter) executeDirect(text string) error {
	i.direct = text
	i.revision++
	i.versions[0] = i.revision
	i.stopped = false
	i.steps = 0

	err := i.loop()
	if err != nil {
		i.running = false
	}
	return err
}

// Evaluate evaluates a standalone numeric expression
func (i *Interpreter) Evaluate(text string) (float64, error) {
	i.lastErr = nil
	i.line = 0
	i.lex.Init(text)
	i.next()

	n, err := i.numericExpression()
	if err == nil && i.sym.Type != lexer.EOL {
		err = i.unexpected()
	}

	if err != nil {
		i.lastErr = err
		return 0, err
	}
	return n, nil
}

// Snapshot is a diagnostic view of the interpreter state
type Snapshot struct {
	Line      int
	Running   bool
	Frames    []Frame
	Variables map[string]string
	Memory    arena.Usage
}

// Snapshot captures the current state for diagnostics
func (i *Interpreter) Snapshot() Snapshot {
	vars := make(map[string]string)
	for _, name := range i.vars.Names() {
		if strings.HasSuffix(name, "$") {
			vars[name] = i.vars.Text(name)
		} else {
			vars[name] = fmt.Sprintf("%g", i.vars.Numeric(name))
		}
	}

	return Snapshot{
		Line:      i.line,
		Running:   i.running,
		Frames:    i.stack.Array(),
		Variables: vars,
		Memory:    i.arena.Usage(),
	}
}

// next advances to the next token
func (i *Interpreter) next() {
	i.sym = i.lex.NextToken()
}

// expect consumes a token of type t or fails
func (i *Interpreter) expect(t lexer.TokenType) error {
	if i.sym.Type != t {
		return i.fail(KindSyntax, "expected %s, got %s", t, describe(i.sym))
	}

	i.next()
	return nil
}

// expectStatementEnd fails unless the current token ends the statement
func (i *Interpreter) expectStatementEnd() error {
	if !i.sym.Type.IsStatementEnd() {
		return i.unexpected()
	}
	return nil
}

// ready prints the prompt shown when a listing or a run completes
func (i *Interpreter) ready() {
	fmt.Fprintln(i.out, "READY.")
}
