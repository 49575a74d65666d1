package scaffold

import (
	"reflect"
	"strings"
	"testing"
)

const sampleManifest = "# Sample layout\n" +
	"\n" +
	"```mkdir\n" +
	"src/components/\n" +
	"src/data\n" +
	"\n" +
	"```\n" +
	"\n" +
	"`src/index.css`\n" +
	"```css\n" +
	"body {\n" +
	"  margin: 0;\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"Some prose that is not a path.\n" +
	"```js\n" +
	"ignored();\n" +
	"```\n" +
	"\n" +
	"`src/App.jsx`:\n" +
	"````jsx\n" +
	"const s = `${a} ```;\n" +
	"````\n"

func TestExtractCodeBlocks(t *testing.T) {
	blocks, err := ExtractCodeBlocks([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("ExtractCodeBlocks failed: %v", err)
	}
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4", len(blocks))
	}

	if blocks[0].Lang != "mkdir" || blocks[0].Hint != "" {
		t.Errorf("block 0 = %+v", blocks[0])
	}
	if blocks[1].Lang != "css" || blocks[1].Hint != "`src/index.css`" {
		t.Errorf("block 1 = %+v", blocks[1])
	}
	if blocks[1].Content != "body {\n  margin: 0;\n}\n" {
		t.Errorf("block 1 content = %q", blocks[1].Content)
	}
	if blocks[3].Content != "const s = `${a} ```;\n" {
		t.Errorf("block 3 content = %q", blocks[3].Content)
	}
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest("sample.md", []byte(sampleManifest))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}

	want := []Entry{
		Dir("src/components"),
		Dir("src/data"),
		File("src/index.css", "body {\n  margin: 0;\n}\n"),
		File("src/App.jsx", "const s = `${a} ```;\n"),
	}
	if !reflect.DeepEqual(m.Entries, want) {
		t.Errorf("entries = %+v, want %+v", m.Entries, want)
	}
	if m.Name != "sample.md" {
		t.Errorf("name = %q", m.Name)
	}
	if len(m.Footer) == 0 {
		t.Error("custom manifests should carry a completion footer")
	}
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no entries", "# nothing here\n\njust text\n", "no entries"},
		{"escaping dir", "```mkdir\n../up\n```\n", "escapes"},
		{"absolute file", "`/etc/hosts`\n```\nx\n```\n", "absolute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest("m.md", []byte(tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExtractPathFromHint(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"`src/App.jsx`", "src/App.jsx"},
		{"`src/App.jsx`:", "src/App.jsx"},
		{"Update this file:\n`tailwind.config.js`", "tailwind.config.js"},
		{"src/App.jsx", ""},
		{"`two words`", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractPathFromHint(tt.hint); got != tt.want {
			t.Errorf("ExtractPathFromHint(%q) = %q, want %q", tt.hint, got, tt.want)
		}
	}
}
