package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the resolver and the CLI.
type Config struct {
	// VersionFile is the path of the version declaration, relative to the root directory.
	VersionFile string `yaml:"version_file"`
	// GitBinary is the version-control executable queried for the revision suffix.
	GitBinary string `yaml:"git_binary"`
	// PythonBinary is the interpreter used to query the tensor framework versions.
	PythonBinary string `yaml:"python_binary"`
	// Env names the environment variables holding the build toggles.
	Env EnvNames `yaml:"env"`
}

// EnvNames lists the environment variables read into Flags.
type EnvNames struct {
	// DisableAugmentation disables the augmentation suffix when set to "1".
	DisableAugmentation string `yaml:"no_augment_version"`
	// SuppressLocalVersion disables the revision suffix when set to "1".
	SuppressLocalVersion string `yaml:"no_local_version"`
	// ReleaseBuild disables the revision suffix when set to "1".
	ReleaseBuild string `yaml:"release_build"`
}

const (
	// DefaultConfigFilename is the default filename for resolver settings.
	DefaultConfigFilename = "pkg-version.yaml"

	// DefaultVersionFilename is the version declaration shipped next to the sources.
	DefaultVersionFilename = "VERSION.txt"

	// DefaultGitBinary is the default version-control executable.
	DefaultGitBinary = "git"

	// DefaultPythonBinary is the default interpreter for the runtime probe.
	DefaultPythonBinary = "python3"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

const (
	// EnvDisableAugmentation is the default toggle disabling augmentation.
	EnvDisableAugmentation = "NVTE_NO_AUGMENT_VERSION"
	// EnvSuppressLocalVersion is the default toggle disabling the revision suffix.
	EnvSuppressLocalVersion = "NVTE_NO_LOCAL_VERSION"
	// EnvReleaseBuild is the default toggle marking a release build.
	EnvReleaseBuild = "NVTE_RELEASE_BUILD"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidVersionFile is returned when the version file path escapes the root directory.
	errInvalidVersionFile = errors.New("version file must be a relative path inside the root directory")
)

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	cfg := new(Config)

	// Validate only fills in defaults for an empty config.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills in defaults for empty fields and checks the version file path.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.VersionFile == "" {
		cfg.VersionFile = DefaultVersionFilename
	}

	if cfg.GitBinary == "" {
		cfg.GitBinary = DefaultGitBinary
	}

	if cfg.PythonBinary == "" {
		cfg.PythonBinary = DefaultPythonBinary
	}

	if cfg.Env.DisableAugmentation == "" {
		cfg.Env.DisableAugmentation = EnvDisableAugmentation
	}

	if cfg.Env.SuppressLocalVersion == "" {
		cfg.Env.SuppressLocalVersion = EnvSuppressLocalVersion
	}

	if cfg.Env.ReleaseBuild == "" {
		cfg.Env.ReleaseBuild = EnvReleaseBuild
	}

	// The version file is opened through an fs.FS rooted at the root directory.
	if !fs.ValidPath(filepath.ToSlash(cfg.VersionFile)) {
		return fmt.Errorf("%w: %q", errInvalidVersionFile, cfg.VersionFile)
	}

	return nil
}
