// Package vcs resolves the short revision of the source checkout.
//
// Any failure to query the version-control tool is reported as
// ErrNotAvailable: building from a source archive without repository
// metadata is a normal condition, not a fault.
package vcs
