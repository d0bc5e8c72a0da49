package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oshokin/pkg-version/internal/accelerator"
	"github.com/oshokin/pkg-version/internal/config"
	"github.com/oshokin/pkg-version/internal/logger"
	"github.com/oshokin/pkg-version/internal/resolver"
	"github.com/oshokin/pkg-version/internal/vcs"
)

// Options contains inputs for the resolve entry point.
type Options struct {
	// ConfigPath is the optional settings YAML file; defaults apply when it does not exist.
	// When empty, DefaultConfigFilename inside Root is used.
	ConfigPath string
	// Root is the source root holding the version file; the executable's directory when empty.
	Root string
	// Format selects the output rendering: FormatText or FormatJSON.
	Format string
	// Timeout bounds the external processes; zero means no timeout.
	Timeout time.Duration
	// Env provides the build toggles; the process environment when nil.
	Env config.Environment
	// Output receives the rendered version; os.Stdout when nil.
	Output io.Writer

	// resolverOptions are appended after the defaults, letting tests stub collaborators.
	resolverOptions []resolver.Option
}

var errNegativeTimeout = errors.New("timeout must not be negative")

// Run resolves the version and writes it to opts.Output.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "pkg-version")

	format, err := ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if opts.Timeout < 0 {
		return errNegativeTimeout
	}

	root, err := resolveRoot(opts.Root)
	if err != nil {
		return fmt.Errorf("determine root directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(settingsPath(root, opts.ConfigPath))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	env := opts.Env
	if env == nil {
		env = config.OSEnvironment{}
	}

	flags := config.ReadFlags(env, cfg.Env)

	ctx = logger.WithKV(ctx, "root", root)
	logger.DebugKV(ctx, "Resolving version",
		"augment", flags.AugmentVersion(),
		"revision", flags.RevisionEnabled())

	if opts.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	resolverOptions := []resolver.Option{
		resolver.WithVersionFile(cfg.VersionFile),
		resolver.WithRevisionSource(vcs.NewGit(cfg.GitBinary)),
		resolver.WithRuntimeProbe(accelerator.NewTorchProbe(cfg.PythonBinary)),
	}

	res, err := resolver.New(root, flags, append(resolverOptions, opts.resolverOptions...)...).Resolve(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Version resolution failed", "error", err)

		return err
	}

	logger.InfoKV(ctx, "Resolved version", "version", res.String(), "kind", string(res.Kind))

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	return Render(output, format, res)
}

// settingsPath returns configPath, or the default settings file inside root.
func settingsPath(root, configPath string) string {
	if configPath != "" {
		return configPath
	}

	return filepath.Join(root, config.DefaultConfigFilename)
}

// resolveRoot returns root as an absolute path, or the directory of the running executable.
func resolveRoot(root string) (string, error) {
	if root == "" {
		executable, err := os.Executable()
		if err != nil {
			return "", err
		}

		root = filepath.Dir(executable)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return resolved, nil
}
