package accelerator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oshokin/pkg-version/internal/config"
	"github.com/oshokin/pkg-version/internal/shell"
)

// torchScript prints the framework version and the CUDA version on separate lines.
const torchScript = "import torch; print(torch.__version__); print(torch.version.cuda)"

// noneValue is what Python prints for torch.version.cuda on CPU-only builds.
const noneValue = "None"

var (
	errUnexpectedOutput = errors.New("unexpected runtime probe output")
	errNoCUDA           = errors.New("torch was built without CUDA")
)

// TorchProbe queries the torch installation visible to a Python interpreter.
type TorchProbe struct {
	// Python is the interpreter executable; config.DefaultPythonBinary when empty.
	Python string
	// Run executes the interpreter; shell.Exec when nil.
	Run shell.Runner
}

// NewTorchProbe returns a probe using the given interpreter and the real process runner.
func NewTorchProbe(python string) *TorchProbe {
	return &TorchProbe{
		Python: python,
		Run:    shell.Exec,
	}
}

// Probe returns the torch and CUDA versions of the active Python environment.
func (p *TorchProbe) Probe(ctx context.Context) (*Versions, error) {
	python := p.Python
	if python == "" {
		python = config.DefaultPythonBinary
	}

	run := p.Run
	if run == nil {
		run = shell.Exec
	}

	output, err := run(ctx, "", python, "-c", torchScript)
	if err != nil {
		return nil, fmt.Errorf("query torch versions: %w", err)
	}

	return parseProbeOutput(string(output))
}

// parseProbeOutput expects exactly two non-empty lines: framework then CUDA.
func parseProbeOutput(output string) (*Versions, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		return nil, fmt.Errorf("%w: %q", errUnexpectedOutput, output)
	}

	framework := strings.TrimSpace(lines[0])
	cuda := strings.TrimSpace(lines[1])

	if framework == "" || cuda == "" {
		return nil, fmt.Errorf("%w: %q", errUnexpectedOutput, output)
	}

	if cuda == noneValue {
		return nil, errNoCUDA
	}

	return &Versions{
		Framework: framework,
		CUDA:      cuda,
	}, nil
}
