package resolve

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/pkg-version/internal/resolver"
)

const (
	// FormatText prints the bare version string.
	FormatText = "text"
	// FormatJSON prints a JSON report with the version parts.
	FormatJSON = "json"
)

var errUnknownFormat = errors.New("unknown output format")

// ParseFormat normalizes the output format; empty means FormatText.
func ParseFormat(s string) (string, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, s)
	}
}

// Render writes res to w in the given format, followed by a newline.
func Render(w io.Writer, format string, res *resolver.Resolution) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, res.String())

		return err
	case FormatJSON:
		report, err := structpb.NewStruct(map[string]any{
			"version": res.String(),
			"base":    res.Base,
			"suffix":  res.Suffix,
			"kind":    string(res.Kind),
		})
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
