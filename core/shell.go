package core

import (
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/spf13/afero"

	"github.com/salvadorprieto/myshell/core/alias"
	"github.com/salvadorprieto/myshell/core/config"
	"github.com/salvadorprieto/myshell/core/logger"
	"github.com/salvadorprieto/myshell/core/shell"
)

// Signal tells the read-execute loop whether to keep going.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// Shell holds the interpreter's mutable state: the prompt fields and the
// alias table. A single goroutine owns it for the lifetime of the session;
// builtins mutate it in place.
type Shell struct {
	Name       string
	Terminator string
	Aliases    *alias.Table

	config *config.Configuration
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	events *logger.SessionLogger
}

// NewShell creates a shell with prompt defaults and alias capacity taken
// from the configuration. The fs backs alias persistence.
func NewShell(cfg *config.Configuration, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer, events *logger.SessionLogger) *Shell {
	return &Shell{
		Name:       cfg.ShellName,
		Terminator: cfg.Terminator,
		Aliases:    alias.NewTable(cfg.MaxAliases),
		config:     cfg,
		fs:         fs,
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		events:     events,
	}
}

// Stdout is where builtins and child processes write their output.
func (s *Shell) Stdout() io.Writer { return s.stdout }

// Stderr is where diagnostics go.
func (s *Shell) Stderr() io.Writer { return s.stderr }

// Prompt is "<name><terminator> " with a single trailing space.
func (s *Shell) Prompt() string {
	return s.Name + s.Terminator + " "
}

// Run reads and executes lines until exit, STOP, or end of input. End of
// input skips dispatch entirely and counts as a successful termination.
func (s *Shell) Run() int {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(s.stdin),
		Stdout: s.stdout,
		Stderr: s.stderr,
	}

	if err := cfg.Init(); err != nil {
		log.Printf("readline init: %v", err)
		return 1
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		log.Printf("readline: %v", err)
		return 1
	}
	defer rl.Close()

	_ = s.events.Record(logger.Event{Kind: logger.KindSessionStart})
	defer func() {
		_ = s.events.Record(logger.Event{Kind: logger.KindSessionEnd})
	}()

	for {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit without dispatching.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		default:
			if s.Execute(shell.Split(line)) == Stop {
				return 0
			}
		}
	}
}

// Execute dispatches a single tokenized line: alias substitution first,
// then builtin lookup, then the external launcher.
func (s *Shell) Execute(tokens []string) Signal {
	if len(tokens) == 0 {
		return Continue
	}

	tokens = s.resolve(tokens)
	_ = s.events.Record(logger.Event{Kind: logger.KindDispatch, Command: tokens})

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		return builtin.Main(s, tokens)
	}

	return s.launch(tokens)
}

// resolve rewrites tokens[0] through the alias table. Substitution happens
// at most once per dispatch; the result is never re-resolved.
func (s *Shell) resolve(tokens []string) []string {
	if target, ok := s.Aliases.Resolve(tokens[0]); ok {
		tokens[0] = target
	}
	return tokens
}
