package core

import (
	"fmt"
	"os"

	"github.com/salvadorprieto/myshell/core/logger"
)

// AllBuiltins holds every registered shell builtin, keyed by command name.
// Lookup is case sensitive and happens after alias substitution.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) Signal
}

type ShellBuiltinFunc func(s *Shell, args []string) Signal

func (f ShellBuiltinFunc) Main(s *Shell, args []string) Signal {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin.
func Cd(s *Shell, args []string) Signal {
	if len(args) < 2 {
		fmt.Fprintf(s.stderr, "myshell: expected argument to %q\n", args[0])
		return Continue
	}
	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.stderr, "myshell: %v\n", err)
	}
	return Continue
}

// Help prints the command summary.
func Help(s *Shell, args []string) Signal {
	w := s.stdout
	fmt.Fprintln(w, "myshell - Available commands:")
	fmt.Fprintln(w, "help: Show this help message.")
	fmt.Fprintln(w, "exit: Terminate the shell session.")
	fmt.Fprintln(w, "STOP: Terminate the shell session.")
	fmt.Fprintln(w, "setshellname <name>: Set the shell prompt name.")
	fmt.Fprintln(w, "setterminator <terminator>: Set the prompt terminator.")
	fmt.Fprintln(w, "newname <new_name> <old_name>: Create or delete an alias for a command.")
	fmt.Fprintln(w, "listnewnames: List all aliases.")
	fmt.Fprintln(w, "savenewnames <file_name>: Save aliases to a file.")
	fmt.Fprintln(w, "readnewnames <file_name>: Read aliases from a file.")
	fmt.Fprintln(w, "cd <dir>: Change the working directory.")
	fmt.Fprintln(w, "<UNIX command>: Execute any valid UNIX command.")
	return Continue
}

// Exit quits the shell.
func Exit(s *Shell, args []string) Signal {
	return Stop
}

// StopShell quits the shell. It is registered as STOP, a separate entry
// from exit.
func StopShell(s *Shell, args []string) Signal {
	return Stop
}

// SetShellName sets the prompt's display name; with no argument it resets
// to the configured default.
func SetShellName(s *Shell, args []string) Signal {
	if len(args) < 2 {
		s.Name = s.config.ShellName
		return Continue
	}
	s.Name = args[1]
	return Continue
}

// SetTerminator sets the prompt suffix; with no argument it resets to the
// configured default.
func SetTerminator(s *Shell, args []string) Signal {
	if len(args) < 2 {
		s.Terminator = s.config.Terminator
		return Continue
	}
	s.Terminator = args[1]
	return Continue
}

// NewName manages aliases: one argument deletes, two define. Anything past
// the pair is ignored.
func NewName(s *Shell, args []string) Signal {
	switch len(args) {
	case 1:
		fmt.Fprintf(s.stderr, "myshell: expected 1 or 2 arguments to %q\n", args[0])

	case 2:
		if err := s.Aliases.Undefine(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "myshell: %v: %s\n", err, args[1])
			return Continue
		}
		_ = s.events.Record(logger.Event{Kind: logger.KindAliasRemove, Alias: args[1]})

	default:
		if err := s.Aliases.Define(args[1], args[2]); err != nil {
			fmt.Fprintf(s.stderr, "myshell: %v\n", err)
			return Continue
		}
		_ = s.events.Record(logger.Event{Kind: logger.KindAliasDefine, Alias: args[1], Target: args[2]})
	}
	return Continue
}

// ListNewNames prints the alias table in insertion order.
func ListNewNames(s *Shell, args []string) Signal {
	for _, a := range s.Aliases.All() {
		fmt.Fprintf(s.stdout, "%s -> %s\n", a.New, a.Old)
	}
	return Continue
}

// SaveNewNames persists the alias table to the named file.
func SaveNewNames(s *Shell, args []string) Signal {
	if len(args) < 2 {
		fmt.Fprintf(s.stderr, "myshell: expected argument to %q\n", args[0])
		return Continue
	}
	if err := s.Aliases.Save(s.fs, args[1]); err != nil {
		fmt.Fprintf(s.stderr, "myshell: %v\n", err)
	}
	return Continue
}

// ReadNewNames appends aliases from the named file to the table.
func ReadNewNames(s *Shell, args []string) Signal {
	if len(args) < 2 {
		fmt.Fprintf(s.stderr, "myshell: expected argument to %q\n", args[0])
		return Continue
	}
	if err := s.Aliases.Load(s.fs, args[1]); err != nil {
		fmt.Fprintf(s.stderr, "myshell: %v\n", err)
	}
	return Continue
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["setshellname"] = ShellBuiltinFunc(SetShellName)
	AllBuiltins["setterminator"] = ShellBuiltinFunc(SetTerminator)
	AllBuiltins["newname"] = ShellBuiltinFunc(NewName)
	AllBuiltins["listnewnames"] = ShellBuiltinFunc(ListNewNames)
	AllBuiltins["savenewnames"] = ShellBuiltinFunc(SaveNewNames)
	AllBuiltins["readnewnames"] = ShellBuiltinFunc(ReadNewNames)
	AllBuiltins["STOP"] = ShellBuiltinFunc(StopShell)
}
