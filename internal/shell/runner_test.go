package shell

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExec_MissingBinary reports the binary name and the lookup failure.
func TestExec_MissingBinary(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "no-such-tool")

	_, err := Exec(context.Background(), "", name)
	require.Error(t, err)
	require.Contains(t, err.Error(), name)
}

// TestExec_StderrInError runs a failing shell command and checks stderr is kept.
func TestExec_StderrInError(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not installed")
	}

	_, err := Exec(context.Background(), t.TempDir(), "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 3, exitErr.ExitCode())
}

// TestExec_Dir runs the command in the requested directory.
func TestExec_Dir(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("pwd"); err != nil {
		t.Skip("pwd is not installed")
	}

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	output, err := Exec(context.Background(), dir, "pwd", "-P")
	require.NoError(t, err)
	require.Equal(t, dir+"\n", string(output))
}
