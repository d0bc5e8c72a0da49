package accelerator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Versions holds the raw version strings reported by the runtime.
type Versions struct {
	// Framework is the tensor framework version, e.g. "2.3.0+cu121".
	Framework string
	// CUDA is the compute toolkit version the framework was built against, e.g. "12.1".
	CUDA string
}

// pep440Pattern matches a PEP 440 public or local version. The release
// segment is captured; epoch, pre, post, dev and local parts are accepted
// and dropped.
var pep440Pattern = regexp.MustCompile(`(?i)^\s*v?` +
	`(?:[0-9]+!)?` +
	`([0-9]+(?:\.[0-9]+)*)` +
	`(?:[-_.]?(?:alpha|a|beta|b|preview|pre|c|rc)[-_.]?[0-9]*)?` +
	`(?:-[0-9]+|[-_.]?(?:post|rev|r)[-_.]?[0-9]*)?` +
	`(?:[-_.]?dev[-_.]?[0-9]*)?` +
	`(?:\+[a-z0-9]+(?:[-_.][a-z0-9]+)*)?` +
	`\s*$`)

var (
	errMissingVersion = errors.New("version is empty")
	errInvalidVersion = errors.New("invalid PEP 440 version")
)

// Suffix formats v as ".cu{major}{minor}.torch{major}{minor}".
func Suffix(v Versions) (string, error) {
	cudaMajor, cudaMinor, err := majorMinor(v.CUDA)
	if err != nil {
		return "", fmt.Errorf("parse cuda version: %w", err)
	}

	torchMajor, torchMinor, err := majorMinor(v.Framework)
	if err != nil {
		return "", fmt.Errorf("parse torch version: %w", err)
	}

	return fmt.Sprintf(".cu%d%d.torch%d%d", cudaMajor, cudaMinor, torchMajor, torchMinor), nil
}

// majorMinor returns the first two release segments of a PEP 440 version.
// A missing minor segment counts as 0.
func majorMinor(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, errMissingVersion
	}

	match := pep440Pattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidVersion, raw)
	}

	release, err := goversion.NewVersion(match[1])
	if err != nil {
		return 0, 0, err
	}

	// go-version pads to at least three segments.
	segments := release.Segments()

	return segments[0], segments[1], nil
}
