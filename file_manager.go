package scaffold

import (
	"io"
	"os"
)

type FileManager struct {
	fs       FS
	resolver *PathResolver
	reporter Reporter
}

func NewFileManager(fsys FS, resolver *PathResolver, reporter Reporter) *FileManager {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &FileManager{fs: fsys, resolver: resolver, reporter: reporter}
}

// EnsureDirectory creates path and any missing parents. Any existing entry at
// path, directory or not, counts as satisfied and is left alone. It reports
// whether a directory was actually created.
func (m *FileManager) EnsureDirectory(path string) (bool, error) {
	target := m.resolver.Resolve(path)

	_, err := m.fs.Stat(target)
	switch {
	case err == nil:
		return false, nil
	case !os.IsNotExist(err):
		return false, &OpError{Op: "stat", Path: path, Err: err}
	}

	if err := m.fs.MkdirAll(target, dirPerm); err != nil {
		return false, &OpError{Op: "mkdir", Path: path, Err: err}
	}
	m.reporter.DirCreated(path)
	return true, nil
}

// WriteFile replaces whatever is at path with content. The parent directory
// must already exist.
func (m *FileManager) WriteFile(path, content string) error {
	if err := m.writeFile(path, content); err != nil {
		return err
	}
	m.reporter.FileWritten(path)
	return nil
}

func (m *FileManager) writeFile(path, content string) (err error) {
	f, err := m.fs.OpenFile(m.resolver.Resolve(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return &OpError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OpError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return &OpError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Apply walks the manifest once and stops at the first failure. Nothing
// already written is rolled back.
func (m *FileManager) Apply(manifest *Manifest) (Summary, error) {
	var s Summary
	for _, e := range manifest.Entries {
		switch e.Kind {
		case DirEntry:
			created, err := m.EnsureDirectory(e.Path)
			if err != nil {
				return s, err
			}
			if created {
				s.Created = append(s.Created, e.Path)
			}
		case FileEntry:
			if err := m.WriteFile(e.Path, e.Content); err != nil {
				return s, err
			}
			s.Written = append(s.Written, e.Path)
		}
	}
	return s, nil
}

// Check compares the tree under the root with the manifest without writing.
func (m *FileManager) Check(manifest *Manifest) Summary {
	var s Summary
	for _, e := range manifest.Entries {
		target := m.resolver.Resolve(e.Path)
		if e.Kind == DirEntry {
			info, err := m.fs.Stat(target)
			switch {
			case os.IsNotExist(err):
				s.Missing = append(s.Missing, e.Path)
			case err != nil:
				s.Failed = append(s.Failed, e.Path)
			case !info.IsDir():
				s.Modified = append(s.Modified, e.Path)
			default:
				s.Matched = append(s.Matched, e.Path)
			}
			continue
		}

		actual, err := GetFileSHA256(m.fs, target)
		switch {
		case os.IsNotExist(err):
			s.Missing = append(s.Missing, e.Path)
		case err != nil:
			s.Failed = append(s.Failed, e.Path)
		case actual != ContentSHA256(e.Content):
			s.Modified = append(s.Modified, e.Path)
		default:
			s.Matched = append(s.Matched, e.Path)
		}
	}
	return s
}

// Plan lists what Apply would do against the current tree.
func (m *FileManager) Plan(manifest *Manifest) []string {
	var lines []string
	for _, e := range manifest.Entries {
		if e.Kind == DirEntry {
			if _, err := m.fs.Stat(m.resolver.Resolve(e.Path)); os.IsNotExist(err) {
				lines = append(lines, "mkdir -p "+e.Path)
			}
			continue
		}
		lines = append(lines, "write "+e.Path+" ("+formatSize(len(e.Content))+")")
	}
	return lines
}
