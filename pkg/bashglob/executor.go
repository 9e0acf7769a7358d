package bashglob

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/arthur-debert/bashglob/pkg/logging"
	"github.com/rs/zerolog"
)

// Executor runs a compiled bash invocation and captures its output
// streams. Run blocks until the process exits and both streams are
// fully drained; err is non-nil when the process could not be spawned
// or exited abnormally.
type Executor interface {
	Run(ctx context.Context, path string, args []string, cwd string) (stdout, stderr []byte, err error)
}

type bashExecutor struct {
	logger zerolog.Logger
}

// NewExecutor returns the default os/exec backed Executor.
func NewExecutor() Executor {
	return &bashExecutor{
		logger: logging.GetLogger("bashglob.executor"),
	}
}

func (e *bashExecutor) Run(ctx context.Context, path string, args []string, cwd string) ([]byte, []byte, error) {
	e.logger.Debug().
		Str("command", path).
		Strs("args", args).
		Str("workingDir", cwd).
		Msg("Executing command")

	cmd := exec.CommandContext(ctx, path, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if err != nil {
		e.logger.Debug().
			Err(err).
			Str("command", path).
			Str("stderr", stderr.String()).
			Msg("Command exited abnormally")
	}

	return stdout.Bytes(), stderr.Bytes(), err
}
