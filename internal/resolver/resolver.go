package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oshokin/pkg-version/internal/accelerator"
	"github.com/oshokin/pkg-version/internal/config"
	"github.com/oshokin/pkg-version/internal/logger"
	"github.com/oshokin/pkg-version/internal/repository/versionfile"
	"github.com/oshokin/pkg-version/internal/vcs"
)

var (
	// ErrConfiguration marks a missing or unreadable version file.
	ErrConfiguration = errors.New("configuration error")
	// ErrAugmentation marks a failure to resolve the augmentation suffix.
	ErrAugmentation = errors.New("augmentation failed")
)

// augmentMarker separates the base version from the accelerator suffix.
const augmentMarker = "+augment"

// RevisionSource reports the short revision of the checkout in dir.
// Failures must wrap vcs.ErrNotAvailable.
type RevisionSource interface {
	Revision(ctx context.Context, dir string) (string, error)
}

// RuntimeProbe reports the accelerator and framework versions of the deployment target.
type RuntimeProbe interface {
	Probe(ctx context.Context) (*accelerator.Versions, error)
}

// Resolver computes version strings for one source root.
type Resolver struct {
	// dir is the source root; git runs here and the version file is looked up relative to it.
	dir string
	// fsys provides the version file; os.DirFS(dir) unless overridden.
	fsys fs.FS
	// versionFile is the path of the version declaration inside fsys.
	versionFile string
	// flags are the build toggles parsed at startup.
	flags config.Flags

	revisions RevisionSource
	probe     RuntimeProbe
}

// Option configures the resolver.
type Option func(*Resolver)

// WithFS reads the version file from fsys instead of the root directory.
func WithFS(fsys fs.FS) Option {
	return func(r *Resolver) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// WithVersionFile overrides the version file path.
func WithVersionFile(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.versionFile = name
		}
	}
}

// WithRevisionSource replaces the git revision source.
func WithRevisionSource(source RevisionSource) Option {
	return func(r *Resolver) {
		if source != nil {
			r.revisions = source
		}
	}
}

// WithRuntimeProbe replaces the torch runtime probe.
func WithRuntimeProbe(probe RuntimeProbe) Option {
	return func(r *Resolver) {
		if probe != nil {
			r.probe = probe
		}
	}
}

// New creates a resolver for the source root dir with the given toggles.
func New(dir string, flags config.Flags, opts ...Option) *Resolver {
	r := &Resolver{
		dir:         dir,
		fsys:        os.DirFS(dir),
		versionFile: config.DefaultVersionFilename,
		flags:       flags,
		revisions:   vcs.NewGit(config.DefaultGitBinary),
		probe:       accelerator.NewTorchProbe(config.DefaultPythonBinary),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve reads the base version and appends at most one suffix.
// It returns an error only for fatal conditions: a missing version file
// or a failed augmentation. An unavailable revision is not an error.
func (r *Resolver) Resolve(ctx context.Context) (*Resolution, error) {
	base, err := versionfile.Read(r.fsys, r.versionFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfiguration, r.versionFile, err)
	}

	logger.DebugKV(ctx, "Read base version", "version", base, "file", r.versionFile)

	if r.flags.AugmentVersion() {
		return r.augment(ctx, base)
	}

	if !r.flags.RevisionEnabled() {
		logger.DebugKV(ctx, "Revision suffix disabled",
			"suppress_local_version", r.flags.SuppressLocalVersion,
			"release_build", r.flags.ReleaseBuild)

		return newPlain(base), nil
	}

	revision, err := r.revisions.Revision(ctx, r.dir)
	if err != nil {
		if !errors.Is(err, vcs.ErrNotAvailable) {
			logger.WarnKV(ctx, "Revision source returned an unexpected error", "error", err)
		}

		logger.DebugKV(ctx, "No revision metadata, using base version", "reason", err)

		return newPlain(base), nil
	}

	return &Resolution{
		Base:   base,
		Suffix: "+" + revision,
		Kind:   KindRevision,
	}, nil
}

// augment returns base with the accelerator suffix. Any failure is fatal.
func (r *Resolver) augment(ctx context.Context, base string) (*Resolution, error) {
	versions, err := r.probe.Probe(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAugmentation, err)
	}

	suffix, err := accelerator.Suffix(*versions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAugmentation, err)
	}

	logger.DebugKV(ctx, "Augmenting version",
		"torch", versions.Framework,
		"cuda", versions.CUDA)

	return &Resolution{
		Base:   base,
		Suffix: augmentMarker + suffix,
		Kind:   KindAugmented,
	}, nil
}
