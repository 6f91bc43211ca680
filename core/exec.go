package core

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/salvadorprieto/myshell/core/logger"
)

// launch runs tokens as an external program with the shell's standard
// streams, blocking until it exits. Executable lookup uses the OS search
// path. A failed launch is reported and never stops the interpreter.
func (s *Shell) launch(tokens []string) Signal {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The program never ran: not found, permission denied, or the
			// spawn itself failed. The child's own failures are its business.
			fmt.Fprintf(s.stderr, "myshell: %v\n", err)
			_ = s.events.Record(logger.Event{
				Kind:    logger.KindLaunchError,
				Command: tokens,
				Error:   err.Error(),
			})
		}
	}

	return Continue
}
