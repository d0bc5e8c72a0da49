package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oshokin/pkg-version/internal/config"
	"github.com/oshokin/pkg-version/internal/shell"
)

// ErrNotAvailable indicates that no revision metadata could be obtained.
var ErrNotAvailable = errors.New("revision not available")

// Git queries the short HEAD hash of a git checkout.
type Git struct {
	// Binary is the git executable; config.DefaultGitBinary when empty.
	Binary string
	// Run executes the command; shell.Exec when nil.
	Run shell.Runner
}

// NewGit returns a Git source using the given binary and the real process runner.
func NewGit(binary string) *Git {
	return &Git{
		Binary: binary,
		Run:    shell.Exec,
	}
}

// Revision returns the short hash of HEAD in dir.
// Every failure wraps ErrNotAvailable.
func (g *Git) Revision(ctx context.Context, dir string) (string, error) {
	binary := g.Binary
	if binary == "" {
		binary = config.DefaultGitBinary
	}

	run := g.Run
	if run == nil {
		run = shell.Exec
	}

	output, err := run(ctx, dir, binary, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotAvailable, err)
	}

	revision := strings.TrimSpace(string(output))
	if revision == "" {
		return "", fmt.Errorf("%w: empty output from %s", ErrNotAvailable, binary)
	}

	return revision, nil
}
