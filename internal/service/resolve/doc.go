// Package resolve is the CLI workflow around the resolver.
//
// It loads settings, parses the build toggles from the environment,
// resolves the version for the source root and writes it as plain text or
// as a JSON report.
package resolve
