package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// stdinManifest selects the piped stdin, or the clipboard on a terminal.
const stdinManifest = "-"

type SourceProvider struct {
	stdin         *os.File
	readClipboard func() (string, error)
}

func NewSourceProvider() *SourceProvider {
	return &SourceProvider{stdin: os.Stdin, readClipboard: clipboard.ReadAll}
}

func (sp *SourceProvider) GetContent() (string, error) {
	stat, err := sp.stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		c, err := io.ReadAll(sp.stdin)
		if err != nil {
			return "", err
		}
		return string(c), nil
	}

	c, err := sp.readClipboard()
	if err != nil {
		return "", fmt.Errorf("could not read clipboard: %w", err)
	}
	return strings.TrimSpace(c), nil
}

// LoadManifest resolves the manifest named by the --manifest flag. An empty
// name selects the built-in dashboard layout.
func (sp *SourceProvider) LoadManifest(name string) (*Manifest, error) {
	switch name {
	case "":
		return DashboardManifest()
	case stdinManifest:
		c, err := sp.GetContent()
		if err != nil {
			return nil, err
		}
		if c == "" {
			return nil, fmt.Errorf("empty manifest source")
		}
		return ParseManifest("stdin", []byte(c))
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, &OpError{Op: "read", Path: name, Err: err}
	}
	return ParseManifest(filepath.Base(name), data)
}
