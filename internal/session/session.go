// Package session is the front end around the interpreter: program files,
// one-shot expressions and the interactive prompt.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"minibasic/internal/config"
	"minibasic/pkg/color"
	"minibasic/pkg/interpreter"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/goforj/godump"
	"golang.org/x/term"
)

type Session struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable debug logging
	NoColor    bool   // Disable colored output
	ShouldRun  bool   // RUN the program after loading the source file
	Dump       bool   // Dump interpreter state when an error is reported
	MaxSteps   int    // Statement limit per submitted line, overrides the config file
	ConfigFile string // Path to the YAML configuration
	SourceFile string // Path to a program file, empty for the REPL
	Eval       string // Expression to evaluate and print

	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout

	cfg  config.Config
	intr *interpreter.Interpreter
}

// Run loads the configuration, builds the interpreter and dispatches to the
// file, expression or REPL mode selected by the options.
func (s *Session) Run() error {
	if s.Stdin == nil {
		s.Stdin = os.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}

	cfg, err := config.Load(s.ConfigFile)
	if err != nil {
		return err
	}
	if s.MaxSteps > 0 {
		cfg.MaxSteps = s.MaxSteps
	}
	s.cfg = cfg
	log.Debug("Configuration loaded", "file", s.ConfigFile, "memory", cfg.MemorySize, "stack", cfg.StackSize, "max_steps", cfg.MaxSteps)

	if s.NoColor || !cfg.Color {
		color.EnableColor(false)
	}

	s.intr, err = interpreter.New(cfg.MemorySize, cfg.StackSize,
		interpreter.WithWriter(s.Stdout),
		interpreter.WithMaxSteps(cfg.MaxSteps),
	)
	if err != nil {
		return err
	}

	if s.SourceFile != "" {
		if err := s.load(); err != nil {
			return err
		}
		if s.ShouldRun {
			if err := s.intr.Run(); err != nil {
				s.dump()
				return fmt.Errorf("run failed: %w", err)
			}
		}
	}

	if s.Eval != "" {
		v, err := s.intr.Evaluate(s.Eval)
		if err != nil {
			s.dump()
			return fmt.Errorf("evaluation failed: %w", err)
		}
		fmt.Fprintf(s.Stdout, "%s = %f\n", s.Eval, v)
		return nil
	}

	if s.SourceFile != "" {
		return nil
	}
	return s.repl()
}

// Interpreter returns the interpreter built by Run
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.intr
}

// load submits every line of the source file
func (s *Session) load() error {
	log.Info("Loading program", "file", s.SourceFile)

	file, err := os.Open(s.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := s.intr.SubmitLine(text); err != nil {
			s.dump()
			return fmt.Errorf("%s:%d: %w", s.SourceFile, number, err)
		}
	}
	return scanner.Err()
}

func (s *Session) repl() error {
	fmt.Fprintln(s.Stdout, "READY.")

	if f, ok := s.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		color.DetectFor(s.Stdout)
		return s.interactive()
	}
	return s.piped()
}

// interactive reads lines with editing and history
func (s *Session) interactive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.cfg.Prompt,
		HistoryFile:     s.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdout:          s.Stdout,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.submit(line)
	}
}

// piped reads lines from non-terminal input until it is exhausted
func (s *Session) piped() error {
	scanner := bufio.NewScanner(s.Stdin)
	for scanner.Scan() {
		s.submit(scanner.Text())
	}
	return scanner.Err()
}

// submit hands one REPL line to the interpreter and reports any error
func (s *Session) submit(line string) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return
	}

	if err := s.intr.SubmitLine(line); err != nil {
		s.report(err)
	}
}

func (s *Session) report(err error) {
	msg := err.Error()

	var ierr *interpreter.Error
	if errors.As(err, &ierr) {
		log.Debug("Line failed", "kind", ierr.Kind, "line", ierr.Line)
	}

	fmt.Fprintln(s.Stdout, color.Error(msg))
	s.dump()
	fmt.Fprintln(s.Stdout, "READY.")
}

// dump writes the interpreter state to the session output when dumping is enabled
func (s *Session) dump() {
	if !s.Dump || s.intr == nil {
		return
	}
	fmt.Fprintln(s.Stdout, godump.DumpStr(s.intr.Snapshot()))
}
