package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	pkgerrors "github.com/agentstation/freewrite/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "entry",
			ID:       "6F1C5B0E-2A44-4E0B-9C55-0A1D2E3F4A5B",
		}
		assert.Equal(t, "entry with ID 6F1C5B0E-2A44-4E0B-9C55-0A1D2E3F4A5B not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("entry", "abc")
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, pkgerrors.IsFileOperation(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("load: %w", pkgerrors.NewNotFoundError("entry", "abc"))
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewIOError("write", "/tmp/x.md", fs.ErrPermission)
		assert.Equal(t, "IO error during write of /tmp/x.md: permission denied", err.Error())
		assert.True(t, pkgerrors.IsFileOperation(err))
		assert.True(t, errors.Is(err, fs.ErrPermission))
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "list", Message: "boom"}
		assert.Equal(t, "IO error during list: boom", err.Error())
	})

	t.Run("nil cause", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "a", nil)
		assert.Empty(t, err.Message)
		assert.Nil(t, err.Unwrap())
	})
}

func TestFormatError(t *testing.T) {
	err := pkgerrors.NewFormatError("notes.txt", "wrong extension")
	assert.Equal(t, `"notes.txt" is not an entry filename: wrong extension`, err.Error())
	assert.True(t, pkgerrors.IsInvalidFormat(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("id", "nope", "not a UUID")
		assert.Equal(t, "validation failed for field id: not a UUID", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "content is not UTF-8"}
		assert.Equal(t, "validation failed: content is not UTF-8", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("no home")
	err := pkgerrors.NewConfigError("dir", "cannot resolve default", base)
	assert.Equal(t, "configuration error in dir: cannot resolve default", err.Error())
	assert.ErrorIs(t, err, base)

	err = &pkgerrors.ConfigError{Message: "bad"}
	assert.Equal(t, "configuration error: bad", err.Error())
}

func TestResourceError(t *testing.T) {
	base := pkgerrors.NewNotFoundError("entry", "abc")
	err := pkgerrors.NewResourceError("export", "entry", "abc", base)
	assert.Equal(t, "failed to export entry abc: entry with ID abc not found", err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))

	noID := pkgerrors.NewResourceError("create", "journal", "", errors.New("x"))
	assert.Equal(t, "failed to create journal: x", noID.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapIO("read", "p", nil))
	assert.Nil(t, pkgerrors.WrapResource("load", "entry", "1", nil))
	assert.Nil(t, pkgerrors.WrapValidation("id", nil))

	err := pkgerrors.WrapIO("read", "p", fs.ErrNotExist)
	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Operation)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = pkgerrors.WrapValidation("id", errors.New("invalid UUID length: 3"))
	assert.True(t, pkgerrors.IsValidationError(err))
}
