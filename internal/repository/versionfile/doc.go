// Package versionfile reads the static version declaration.
//
// Only the first line of the file is significant; surrounding whitespace is
// trimmed and no further structure is imposed.
package versionfile
