package scaffold

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsole_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.DirCreated("src/data")
	c.FileWritten("src/data/data.js")
	c.Println("")
	c.Println("npm run dev")

	want := "Created directory: src/data\nCreated file: src/data/data.js\n\nnpm run dev\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestConsole_BufferGetsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)
	c.FileWritten("src/App.jsx")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal writer received escape codes: %q", buf.String())
	}
}

func TestConsole_FormatSummary(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, true)
	got := c.FormatSummary(Summary{
		Message:  "Tree differs from manifest dashboard",
		Matched:  []string{"src"},
		Modified: []string{"src/App.jsx"},
		Missing:  []string{"src/utils/utils.js"},
	})

	want := "Tree differs from manifest dashboard\n\n" +
		"Matched:\n  src\n" +
		"Modified:\n  src/App.jsx\n" +
		"Missing:\n  src/utils/utils.js\n"
	if got != want {
		t.Errorf("FormatSummary =\n%s\nwant\n%s", got, want)
	}
}

func TestConsole_FormatPlan(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, true)
	if got := c.FormatPlan(nil); got != "Nothing to do\n" {
		t.Errorf("empty plan = %q", got)
	}
	if got := c.FormatPlan([]string{"mkdir -p a", "write a/b (1 byte)"}); got != "mkdir -p a\nwrite a/b (1 byte)\n" {
		t.Errorf("plan = %q", got)
	}
}
