// Package shell runs external tools and captures their stdout.
package shell
