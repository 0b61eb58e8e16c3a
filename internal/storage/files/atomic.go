package files

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/errors"
)

// WriteFile atomically replaces path with data using a temp file in the
// same directory. An existing file is left untouched when any step fails.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	return writeAtomic(fs, filepath.Dir(path), path, data)
}

// writeAtomic replaces path with data. The bytes go to a temp file in the
// same directory which is then renamed over path, so readers see either the
// previous file or the complete new one. The temp file is removed on failure.
func writeAtomic(fs afero.Fs, dir, path string, data []byte) error {
	tmp, err := afero.TempFile(fs, dir, constants.TempFilePattern)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return errors.WrapIO(op, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("write", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	// afero.TempFile creates 0600 files
	if err := fs.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
