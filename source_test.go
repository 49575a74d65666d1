package scaffold

import (
	"errors"
	"os"
	"strings"
	"testing"
)

const pipedManifest = "```mkdir\nsrc/utils\n```\n\n`src/utils/utils.js`\n```js\nexport {};\n```\n"

func TestSourceProvider_PipedStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	defer r.Close()
	if _, err := w.WriteString(pipedManifest); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	w.Close()

	sp := &SourceProvider{
		stdin: r,
		readClipboard: func() (string, error) {
			t.Error("clipboard should not be read when stdin is piped")
			return "", nil
		},
	}

	m, err := sp.LoadManifest(stdinManifest)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.Name != "stdin" || len(m.Entries) != 2 {
		t.Errorf("manifest = %+v", m)
	}
}

func TestSourceProvider_ClipboardOnTerminal(t *testing.T) {
	tty, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open %s failed: %v", os.DevNull, err)
	}
	defer tty.Close()
	if info, err := tty.Stat(); err != nil || info.Mode()&os.ModeCharDevice == 0 {
		t.Skip("null device is not a character device here")
	}

	t.Run("reads manifest from clipboard", func(t *testing.T) {
		sp := &SourceProvider{stdin: tty, readClipboard: func() (string, error) {
			return "\n" + pipedManifest + "\n\n", nil
		}}
		m, err := sp.LoadManifest(stdinManifest)
		if err != nil {
			t.Fatalf("LoadManifest failed: %v", err)
		}
		if m.Entries[1].Content != "export {};\n" {
			t.Errorf("content = %q", m.Entries[1].Content)
		}
	})

	t.Run("empty clipboard is an error", func(t *testing.T) {
		sp := &SourceProvider{stdin: tty, readClipboard: func() (string, error) { return "  \n", nil }}
		_, err := sp.LoadManifest(stdinManifest)
		if err == nil || !strings.Contains(err.Error(), "empty manifest") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("clipboard failure surfaces", func(t *testing.T) {
		unavailable := errors.New("no clipboard utilities available")
		sp := &SourceProvider{stdin: tty, readClipboard: func() (string, error) { return "", unavailable }}
		_, err := sp.LoadManifest(stdinManifest)
		if !errors.Is(err, unavailable) {
			t.Errorf("error = %v", err)
		}
	})
}

func TestSourceProvider_BuiltIn(t *testing.T) {
	m, err := NewSourceProvider().LoadManifest("")
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.Name != "dashboard" {
		t.Errorf("name = %q, want dashboard", m.Name)
	}
}
