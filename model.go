package scaffold

type EntryKind int

const (
	DirEntry EntryKind = iota
	FileEntry
)

func (k EntryKind) String() string {
	if k == DirEntry {
		return "dir"
	}
	return "file"
}

// Entry is one manifest step. Path is relative to the target root and uses
// forward slashes regardless of the host OS.
type Entry struct {
	Kind    EntryKind
	Path    string
	Content string
}

func Dir(path string) Entry { return Entry{Kind: DirEntry, Path: path} }

func File(path, content string) Entry {
	return Entry{Kind: FileEntry, Path: path, Content: content}
}

type Manifest struct {
	Name    string
	Entries []Entry
	Footer  []string
}

type Summary struct {
	Created  []string
	Written  []string
	Matched  []string
	Missing  []string
	Modified []string
	Failed   []string
	Message  string
}

// Clean reports whether a check found no drift.
func (s Summary) Clean() bool {
	return len(s.Missing) == 0 && len(s.Modified) == 0 && len(s.Failed) == 0
}
