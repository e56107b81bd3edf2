// Package source acquires whole transcript blobs for the pipeline:
// files, stdin, or zstd-compressed exports. The core never sees a
// partial stream.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ErrNoSpeakers is returned when a document contains no user line
// followed by an agent turn, leaving nothing to segment.
var ErrNoSpeakers = errors.New("no speaker turns detected")

// Read returns the complete contents of path. "-" reads stdin;
// a .zst suffix is decompressed transparently.
func Read(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("no such file: %s", path)
	case errors.Is(err, os.ErrPermission):
		return "", fmt.Errorf("permission denied: %s", path)
	case err != nil:
		return "", fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		return "", fmt.Errorf("%s is a directory, not a transcript", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("open zstd decoder: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write stores data at path. "-" writes stdout. File output goes
// through a temp file and rename so a failed run never leaves a
// partially written document.
func Write(path, data string) error {
	if path == "-" {
		if _, err := io.WriteString(os.Stdout, data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".chatmark-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Speaker prefixes look like "name: " with a single bare token.
var speakerPattern = regexp.MustCompile(`^([A-Za-z0-9][\w.-]*): `)

// DetectUser resolves the document's user identifier: the first speaker
// token that is later followed by an agent opener line. Returns
// ErrNoSpeakers when no such pair exists.
func DetectUser(text, agent string) (string, error) {
	lines := strings.Split(text, "\n")
	agentPrefix := agent + ": "

	for i, line := range lines {
		m := speakerPattern.FindStringSubmatch(line)
		if m == nil || m[1] == agent {
			continue
		}
		for _, later := range lines[i+1:] {
			if strings.HasPrefix(later, agentPrefix) {
				return m[1], nil
			}
		}
	}
	return "", ErrNoSpeakers
}
