package testutils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// MemFS is an in-memory filesystem for exercising config writes without
// touching disk. Set the Fail* fields to inject errors.
type MemFS struct {
	mu    sync.Mutex
	dirs  map[string]bool
	files map[string][]byte
	perms map[string]os.FileMode

	FailMkdir error
	FailWrite error
	Writes    int
}

// NewMemFS returns an empty filesystem containing only the root.
func NewMemFS() *MemFS {
	return &MemFS{
		dirs:  map[string]bool{string(filepath.Separator): true, ".": true},
		files: map[string][]byte{},
		perms: map[string]os.FileMode{},
	}
}

func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailMkdir != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: m.FailMkdir}
	}
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, isFile := m.files[p]; isFile {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
		}
		m.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

func (m *MemFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrite != nil {
		return &fs.PathError{Op: "open", Path: path, Err: m.FailWrite}
	}
	path = filepath.Clean(path)
	if !m.dirs[filepath.Dir(path)] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	m.files[path] = append([]byte(nil), data...)
	m.perms[path] = perm
	m.Writes++
	return nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Exists reports whether a file or directory exists at path.
func (m *MemFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path]
}

// Perm returns the mode a file was written with.
func (m *MemFS) Perm(path string) os.FileMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.perms[filepath.Clean(path)]
}
