package versionfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// Read returns the trimmed first line of name inside fsys.
// The file is read on every call.
func Read(fsys fs.FS, name string) (string, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return "", fmt.Errorf("open version file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read version file: %w", err)
	}

	return strings.TrimSpace(line), nil
}
