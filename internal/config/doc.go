// Package config defines the resolver settings and the build toggles.
//
// Settings live in an optional YAML file (version file name, external
// binaries, environment variable names). Toggles are parsed once from an
// Environment into a typed Flags value.
package config
