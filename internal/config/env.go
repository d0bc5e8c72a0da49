package config

import (
	"os"
	"strings"
)

// Environment looks up process environment variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads the real process environment.
type OSEnvironment struct{}

// LookupEnv implements Environment via os.LookupEnv.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is a fixed environment, mostly useful in tests.
type MapEnvironment map[string]string

// LookupEnv implements Environment over the map.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	value, ok := m[key]

	return value, ok
}

// Flags are the build toggles read once from the environment.
// The zero value enables both augmentation and the revision suffix.
type Flags struct {
	// DisableAugmentation turns off the accelerator/framework suffix.
	DisableAugmentation bool
	// SuppressLocalVersion turns off the revision suffix.
	SuppressLocalVersion bool
	// ReleaseBuild turns off the revision suffix regardless of SuppressLocalVersion.
	ReleaseBuild bool
}

// AugmentVersion reports whether the augmentation path is active.
func (f Flags) AugmentVersion() bool {
	return !f.DisableAugmentation
}

// RevisionEnabled reports whether a revision suffix may be appended.
func (f Flags) RevisionEnabled() bool {
	return !f.SuppressLocalVersion && !f.ReleaseBuild
}

// ParseToggle converts a raw environment value to a boolean.
// Only "1" (surrounding whitespace ignored) is true; unset counts as "0".
func ParseToggle(value string) bool {
	return strings.TrimSpace(value) == "1"
}

// ReadFlags parses the toggles named in names from env.
func ReadFlags(env Environment, names EnvNames) Flags {
	lookup := func(key string) bool {
		value, ok := env.LookupEnv(key)
		if !ok {
			return false
		}

		return ParseToggle(value)
	}

	return Flags{
		DisableAugmentation:  lookup(names.DisableAugmentation),
		SuppressLocalVersion: lookup(names.SuppressLocalVersion),
		ReleaseBuild:         lookup(names.ReleaseBuild),
	}
}
