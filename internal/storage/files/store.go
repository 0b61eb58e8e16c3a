// Package files provides the filesystem-backed entry store. It owns one flat
// directory of entry files and rebuilds the catalog from it on every request.
package files

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/errors"
	"github.com/agentstation/freewrite/pkg/logging"
)

// Compile-time interface check.
var _ entries.Store = (*Store)(nil)

var (
	errInvalidUTF8 = errors.New("content is not valid UTF-8")
	errIDInUse     = errors.New("generated id is already in use")
)

// idAttempts bounds how many fresh ids CreateNewEntry draws before giving up.
const idAttempts = 3

// Store is an entries.Store backed by a single directory.
//
// Mutations hold the write lock and reads the read lock, so callers sharing
// one Store never observe a write half applied. Other processes are only
// kept out of half-written files by the atomic rename.
type Store struct {
	mu     sync.RWMutex
	dir    string
	fs     afero.Fs
	logger *zerolog.Logger
	now    func() time.Time
	newID  func() uuid.UUID

	initMu sync.Mutex
	ready  bool
}

// New creates a store for dir. The directory is created lazily on first use.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    filepath.Clean(dir),
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// CreateNewEntry writes a new entry file holding the initial header.
func (s *Store) CreateNewEntry(ctx context.Context) (entries.Entry, error) {
	if err := ctx.Err(); err != nil {
		return entries.Entry{}, err
	}
	s.ensureDir()

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.unusedID()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create entry")
		return entries.Entry{}, err
	}
	createdAt := s.now().Truncate(time.Second)
	name := entries.EncodeFilename(id, createdAt)
	path := s.path(name)

	if err := writeAtomic(s.fs, s.dir, path, []byte(constants.EntryHeader)); err != nil {
		s.logger.Error().Err(err).Str("file", name).Msg("Failed to create entry")
		return entries.Entry{}, err
	}

	entry, err := entries.FromFile(name, constants.EntryHeader, s.modTime(path, createdAt))
	if err != nil {
		return entries.Entry{}, err
	}

	s.logger.Debug().Str("entry_id", id.String()).Str("file", name).Msg("Created entry")
	return entry, nil
}

// LoadEntry returns the content of the entry with the given id.
func (s *Store) LoadEntry(ctx context.Context, id uuid.UUID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.ensureDir()

	s.mu.RLock()
	defer s.mu.RUnlock()

	name, err := s.resolve(id)
	if err != nil {
		return "", err
	}
	return s.read(s.path(name))
}

// SaveEntry atomically replaces the content of an existing entry. The
// filename, and with it the id and creation time, is kept.
func (s *Store) SaveEntry(ctx context.Context, id uuid.UUID, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !utf8.ValidString(content) {
		return errors.NewValidationError("content", nil, errInvalidUTF8.Error())
	}
	s.ensureDir()

	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := s.resolve(id)
	if err != nil {
		return err
	}

	if err := writeAtomic(s.fs, s.dir, s.path(name), []byte(content)); err != nil {
		s.logger.Error().Err(err).Str("entry_id", id.String()).Msg("Failed to save entry")
		return err
	}

	s.logger.Debug().Str("entry_id", id.String()).Int("bytes", len(content)).Msg("Saved entry")
	return nil
}

// DeleteEntry removes the entry file.
func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.ensureDir()

	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := s.resolve(id)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("entry", id.String())
		}
		return errors.WrapIO("delete", s.path(name), err)
	}

	s.logger.Debug().Str("entry_id", id.String()).Str("file", name).Msg("Deleted entry")
	return nil
}

// LoadAllEntries rescans the directory and returns every readable entry,
// newest first. Non-entry names and unreadable files are logged and skipped;
// only a directory that cannot be listed fails the call.
func (s *Store) LoadAllEntries(ctx context.Context) ([]entries.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.ensureDir()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.scan()
}

// EntryExists reports whether the catalog contains id.
func (s *Store) EntryExists(ctx context.Context, id uuid.UUID) bool {
	list, err := s.LoadAllEntries(ctx)
	if err != nil {
		return false
	}
	return entries.Catalog(list).Contains(id)
}

// scan builds the catalog. Callers hold s.mu.
func (s *Store) scan() ([]entries.Entry, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, errors.WrapIO("list", s.dir, err)
	}

	list := make([]entries.Entry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() {
			continue
		}
		if !entries.IsEntryFilename(name) {
			s.logger.Debug().Str("file", name).Msg("Skipping non-entry file")
			continue
		}

		content, err := s.read(s.path(name))
		if err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("Skipping unreadable entry")
			continue
		}

		entry, err := entries.FromFile(name, content, info.ModTime())
		if err != nil {
			continue
		}
		list = append(list, entry)
	}

	entries.SortNewestFirst(list)
	return list, nil
}

// resolve maps id to a filename using directory names only, so a file that
// is listed but unreadable still resolves and fails later on read. When two
// files share an id the newest wins. Callers hold s.mu.
func (s *Store) resolve(id uuid.UUID) (string, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return "", errors.WrapIO("list", s.dir, err)
	}

	var (
		found     bool
		best      string
		bestStamp time.Time
	)
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		fileID, createdAt, err := entries.DecodeFilename(info.Name())
		if err != nil || fileID != id {
			continue
		}
		if !found || createdAt.After(bestStamp) || (createdAt.Equal(bestStamp) && info.Name() < best) {
			found, best, bestStamp = true, info.Name(), createdAt
		}
	}

	if !found {
		return "", errors.NewNotFoundError("entry", id.String())
	}
	return best, nil
}

// unusedID draws ids until one matches no existing file. A directory that
// cannot be listed is not treated as a collision; the write reports it.
// Callers hold s.mu.
func (s *Store) unusedID() (uuid.UUID, error) {
	var id uuid.UUID
	for i := 0; i < idAttempts; i++ {
		id = s.newID()
		if _, err := s.resolve(id); err != nil {
			return id, nil
		}
		s.logger.Warn().Str("entry_id", id.String()).Msg("Generated id already in use")
	}
	return uuid.Nil, errors.WrapResource("create", "entry", id.String(), errIDInUse)
}

// read returns a file's content, rejecting anything that is not UTF-8 text.
func (s *Store) read(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.WrapIO("read", path, errInvalidUTF8)
	}
	return string(data), nil
}

// ensureDir creates the directory once. A failure is logged and retried on
// the next call; the operation in flight then fails on its own.
func (s *Store) ensureDir() {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.ready {
		return
	}
	if err := s.fs.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("Failed to create entries directory")
		return
	}
	s.ready = true
}

func (s *Store) modTime(path string, fallback time.Time) time.Time {
	info, err := s.fs.Stat(path)
	if err != nil {
		return fallback
	}
	return info.ModTime()
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
