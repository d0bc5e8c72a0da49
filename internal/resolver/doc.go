// Package resolver computes the package version string.
//
// The base version comes from the version file. When augmentation is enabled
// the accelerator suffix is appended and the revision logic is skipped;
// otherwise the short VCS revision is appended unless the build toggles
// suppress it. At most one suffix is ever appended.
package resolver
