package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes name with args in dir and returns its stdout.
// An empty dir runs in the current working directory.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Exec runs the command through os/exec. When the command exits with an
// error, its trimmed stderr is appended to the returned error.
func Exec(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return output, nil
}
