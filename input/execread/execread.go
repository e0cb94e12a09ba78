// Package execread provides a session that reads lines from a command.
package execread

import (
	"context"
	"os"
	"os/exec"

	"github.com/noriah/termgraph/input"
	"github.com/pkg/errors"
)

// Session is a session that reads lines from the standard output of a Cmd.
type Session struct {
	// OnStart is called when the session starts. Nil by default.
	OnStart func(ctx context.Context, cmd *exec.Cmd) error

	// prevents cmd.Stderr from pointing to os.Stderr. false by default.
	DisconnectedStderr bool

	argv []string
}

// NewSession creates a new execread session. It never returns an error.
func NewSession(argv []string) *Session {
	if len(argv) < 1 {
		panic("argv has no arg0")
	}

	return &Session{argv: argv}
}

// NewShellSession runs command with sh -c.
func NewShellSession(command string) *Session {
	return NewSession([]string{"sh", "-c", command})
}

// Start implements input.Session. The command is killed when ctx is done.
func (s *Session) Start(ctx context.Context, lines chan<- string) error {
	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)

	if !s.DisconnectedStderr {
		cmd.Stderr = os.Stderr
	}

	o, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to get stdout pipe")
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start "+s.argv[0])
	}

	if s.OnStart != nil {
		if err := s.OnStart(ctx, cmd); err != nil {
			cmd.Process.Kill()
			cmd.Wait()
			return err
		}
	}

	readErr := input.NewReaderSession(o).Start(ctx, lines)
	if readErr != nil {
		cmd.Process.Kill()
	}

	waitErr := cmd.Wait()

	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case readErr != nil:
		return readErr
	case waitErr != nil:
		return errors.Wrap(waitErr, s.argv[0]+" failed")
	}

	return nil
}
