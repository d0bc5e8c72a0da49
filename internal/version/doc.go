// Package version exposes build metadata for the pkg-version binary.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags. This describes the tool, not the package whose version the
// tool resolves.
package version
