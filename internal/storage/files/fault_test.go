package files_test

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/agentstation/freewrite/pkg/errors"
)

var errDiskFull = errors.New("no space left on device")

// faultFs wraps an afero.Fs and fails selected operations on demand.
type faultFs struct {
	afero.Fs

	mu         sync.Mutex
	failMkdir  bool
	failWrite  bool
	failRename bool
	failOpen   map[string]bool
}

func newFaultFs(base afero.Fs) *faultFs {
	return &faultFs{Fs: base, failOpen: map[string]bool{}}
}

func (f *faultFs) set(fn func(*faultFs)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *faultFs) MkdirAll(path string, perm os.FileMode) error {
	f.mu.Lock()
	fail := f.failMkdir
	f.mu.Unlock()
	if fail {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrPermission}
	}
	return f.Fs.MkdirAll(path, perm)
}

func (f *faultFs) Open(name string) (afero.File, error) {
	f.mu.Lock()
	fail := f.failOpen[filepath.Base(name)]
	f.mu.Unlock()
	if fail {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

// OpenFile refuses to create files in a missing directory while mkdir is
// failing. MemMapFs would otherwise create the parent implicitly.
func (f *faultFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f.mu.Lock()
	blocked := f.failMkdir
	f.mu.Unlock()
	if blocked {
		if ok, _ := afero.DirExists(f.Fs, filepath.Dir(name)); !ok {
			return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
		}
	}

	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	fail := f.failWrite && flag&os.O_CREATE != 0
	f.mu.Unlock()
	if fail {
		return &shortFile{File: file}, nil
	}
	return file, nil
}

func (f *faultFs) Rename(oldname, newname string) error {
	f.mu.Lock()
	fail := f.failRename
	f.mu.Unlock()
	if fail {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: os.ErrPermission}
	}
	return f.Fs.Rename(oldname, newname)
}

// shortFile writes half of what it is given and then reports a full disk.
type shortFile struct {
	afero.File
}

func (s *shortFile) Write(p []byte) (int, error) {
	n, _ := s.File.Write(p[:len(p)/2])
	return n, errDiskFull
}
