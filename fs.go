package scaffold

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// FS is the slice of the os package the scaffolder touches. Tests wrap
// RealFS to inject failures.
type FS interface {
	Stat(path string) (iofs.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(path string, flag int, perm os.FileMode) (io.WriteCloser, error)
	Open(path string) (io.ReadCloser, error)
}

type RealFS struct{}

func NewRealFS() *RealFS { return &RealFS{} }

func (RealFS) Stat(path string) (iofs.FileInfo, error) { return os.Stat(path) }

func (RealFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (RealFS) OpenFile(path string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(path, flag, perm)
}

func (RealFS) Open(path string) (io.ReadCloser, error) { return os.Open(path) }

// OpError is the single failure class of a scaffold run.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

func (e *OpError) Unwrap() error { return e.Err }

type PathResolver struct {
	root string
}

func NewPathResolver(root string) (*PathResolver, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve target root %q: %w", root, err)
	}
	return &PathResolver{root: abs}, nil
}

func (r *PathResolver) Root() string { return r.root }

// Resolve maps a manifest path onto the host filesystem under the root.
func (r *PathResolver) Resolve(manifestPath string) string {
	return filepath.Join(r.root, filepath.FromSlash(manifestPath))
}

func GetFileSHA256(fsys FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func ContentSHA256(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
