package files_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/freewrite/internal/storage/files"
	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/errors"
	"github.com/agentstation/freewrite/pkg/logging"
)

const testDir = "/journal"

var base = time.Date(2024, time.March, 9, 7, 5, 3, 0, time.Local)

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(step)
		return t
	}
}

func newMemStore(t *testing.T, opts ...files.Option) (*files.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	opts = append([]files.Option{
		files.WithFs(fs),
		files.WithLogger(logging.NewNopLogger()),
		files.WithClock(steppingClock(base, time.Second)),
	}, opts...)
	return files.New(testDir, opts...), fs
}

func writeEntryFile(t *testing.T, fs afero.Fs, id uuid.UUID, createdAt time.Time, content string) string {
	t.Helper()
	name := entries.EncodeFilename(id, createdAt)
	require.NoError(t, fs.MkdirAll(testDir, constants.DirPermissions))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, name), []byte(content), constants.FilePermissions))
	return name
}

func dirNames(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, testDir)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

func TestCreateNewEntry(t *testing.T) {
	ctx := context.Background()
	store, fs := newMemStore(t)

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)

	assert.Equal(t, entries.EncodeFilename(entry.ID, base), entry.Filename)
	assert.True(t, base.Equal(entry.CreatedAt))
	assert.Equal(t, "Mar 9", entry.DisplayDate)
	assert.Equal(t, "", entry.PreviewText)
	assert.Equal(t, 0, entry.WordCount)
	assert.True(t, entry.IsEmpty())

	data, err := afero.ReadFile(fs, filepath.Join(testDir, entry.Filename))
	require.NoError(t, err)
	assert.Equal(t, constants.EntryHeader, string(data))

	content, err := store.LoadEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EntryHeader, content)
}

func TestCreateNewEntry_CreatesDirectoryLazily(t *testing.T) {
	store, fs := newMemStore(t)

	exists, err := afero.DirExists(fs, testDir)
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := store.LoadAllEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	exists, err = afero.DirExists(fs, testDir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateNewEntry_UsesIDGenerator(t *testing.T) {
	id := uuid.MustParse("3c1e8f52-93b0-4c8b-a3f4-6f1d2b9e7a10")
	store, _ := newMemStore(t, files.WithIDGenerator(func() uuid.UUID { return id }))

	entry, err := store.CreateNewEntry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, "[3C1E8F52-93B0-4C8B-A3F4-6F1D2B9E7A10]-[2024-03-09-07-05-03].md", entry.Filename)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, fs := newMemStore(t)

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)

	content := constants.EntryHeader + "Hello, world. Ünïcödé ✓"
	require.NoError(t, store.SaveEntry(ctx, entry.ID, content))

	loaded, err := store.LoadEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, content, loaded)

	// the filename is never renamed
	assert.Equal(t, []string{entry.Filename}, dirNames(t, fs))

	list, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello, world. Ünïcödé ✓", list[0].PreviewText)
	assert.Equal(t, 4, list[0].WordCount)
}

func TestSave_EmptyContent(t *testing.T) {
	ctx := context.Background()
	store, _ := newMemStore(t)

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveEntry(ctx, entry.ID, ""))

	loaded, err := store.LoadEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "", loaded)
}

func TestSave_UnknownID(t *testing.T) {
	store, fs := newMemStore(t)

	err := store.SaveEntry(context.Background(), uuid.New(), "text")
	assert.True(t, errors.IsNotFound(err))
	assert.Empty(t, dirNames(t, fs))
}

func TestSave_RejectsInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	store, _ := newMemStore(t)

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)

	err = store.SaveEntry(ctx, entry.ID, "bad \xff\xfe bytes")
	assert.True(t, errors.IsValidationError(err))

	loaded, err := store.LoadEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EntryHeader, loaded)
}

func TestSave_LowerCaseFilenameIsKept(t *testing.T) {
	ctx := context.Background()
	store, fs := newMemStore(t)

	name := "[3c1e8f52-93b0-4c8b-a3f4-6f1d2b9e7a10]-[2024-03-09-07-05-03].md"
	require.NoError(t, fs.MkdirAll(testDir, constants.DirPermissions))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, name), []byte("old"), constants.FilePermissions))

	id := uuid.MustParse("3c1e8f52-93b0-4c8b-a3f4-6f1d2b9e7a10")
	require.NoError(t, store.SaveEntry(ctx, id, "new"))

	assert.Equal(t, []string{name}, dirNames(t, fs))
	loaded, err := store.LoadEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded)
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	store, fs := newMemStore(t)

	keep, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	gone, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)

	require.NoError(t, store.DeleteEntry(ctx, gone.ID))

	_, err = store.LoadEntry(ctx, gone.ID)
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(store.DeleteEntry(ctx, gone.ID)))
	assert.False(t, store.EntryExists(ctx, gone.ID))
	assert.True(t, store.EntryExists(ctx, keep.ID))
	assert.Equal(t, []string{keep.Filename}, dirNames(t, fs))
}

func TestLoadEntry_UnknownID(t *testing.T) {
	store, _ := newMemStore(t)

	_, err := store.LoadEntry(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var nf *errors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, "entry", nf.Resource)
}

func TestLoadAllEntries_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store, _ := newMemStore(t)

	var created []entries.Entry
	for i := 0; i < 4; i++ {
		e, err := store.CreateNewEntry(ctx)
		require.NoError(t, err)
		created = append(created, e)
	}

	list, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i := range list {
		assert.Equal(t, created[len(created)-1-i].ID, list[i].ID)
	}
}

func TestLoadAllEntries_SameSecondIsDeterministic(t *testing.T) {
	ctx := context.Background()
	store, _ := newMemStore(t, files.WithClock(func() time.Time { return base }))

	for i := 0; i < 5; i++ {
		_, err := store.CreateNewEntry(ctx)
		require.NoError(t, err)
	}

	first, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	second, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries.Catalog(first).IDs(), entries.Catalog(second).IDs())

	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Filename, first[i].Filename)
	}
}

func TestLoadAllEntries_SkipsWhatItCannotUse(t *testing.T) {
	ctx := context.Background()
	mem := afero.NewMemMapFs()
	fs := newFaultFs(mem)
	log := logging.NewTestLogger(t)
	store := files.New(testDir, files.WithFs(fs), files.WithLogger(log.Logger))

	good := writeEntryFile(t, mem, uuid.New(), base, constants.EntryHeader+"kept")
	writeEntryFile(t, mem, uuid.New(), base.Add(time.Minute), "bad \xff bytes")
	lockedID := uuid.New()
	locked := writeEntryFile(t, mem, lockedID, base.Add(time.Hour), "locked")
	fs.set(func(f *faultFs) { f.failOpen[locked] = true })

	require.NoError(t, afero.WriteFile(mem, filepath.Join(testDir, "notes.txt"), []byte("x"), constants.FilePermissions))
	require.NoError(t, afero.WriteFile(mem, filepath.Join(testDir, ".DS_Store"), []byte("x"), constants.FilePermissions))
	require.NoError(t, mem.MkdirAll(filepath.Join(testDir, entries.EncodeFilename(uuid.New(), base)), constants.DirPermissions))

	list, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, good, list[0].Filename)
	assert.Equal(t, "kept", list[0].PreviewText)

	assert.True(t, log.HasEvent("warn", "Skipping unreadable entry"), log.Output())
	assert.True(t, log.HasEvent("debug", "Skipping non-entry file"), log.Output())

	// listed but unreadable resolves, then fails on read
	_, err = store.LoadEntry(ctx, lockedID)
	assert.True(t, errors.IsFileOperation(err))
	assert.False(t, errors.IsNotFound(err))
}

func TestLoadAllEntries_ModifiedAtIsFileTime(t *testing.T) {
	ctx := context.Background()
	store, fs := newMemStore(t)

	name := writeEntryFile(t, fs, uuid.New(), base, "text")
	mtime := base.Add(36 * time.Hour)
	require.NoError(t, fs.Chtimes(filepath.Join(testDir, name), mtime, mtime))

	list, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, mtime.Equal(list[0].ModifiedAt))
	assert.True(t, base.Equal(list[0].CreatedAt))
}

func TestLoadEntry_DuplicateIDResolvesToNewest(t *testing.T) {
	ctx := context.Background()
	store, fs := newMemStore(t)

	id := uuid.New()
	writeEntryFile(t, fs, id, base, "older")
	writeEntryFile(t, fs, id, base.Add(time.Hour), "newer")

	content, err := store.LoadEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "newer", content)
}

func TestSave_FailedWriteKeepsPreviousContent(t *testing.T) {
	ctx := context.Background()
	mem := afero.NewMemMapFs()
	fs := newFaultFs(mem)
	store := files.New(testDir, files.WithFs(fs), files.WithLogger(logging.NewNopLogger()))

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveEntry(ctx, entry.ID, "first draft"))

	fs.set(func(f *faultFs) { f.failWrite = true })
	err = store.SaveEntry(ctx, entry.ID, strings.Repeat("second draft ", 100))
	require.Error(t, err)
	assert.True(t, errors.IsFileOperation(err))
	assert.ErrorIs(t, err, errDiskFull)

	fs.set(func(f *faultFs) { f.failWrite = false })
	content, err := store.LoadEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "first draft", content)
	assert.Equal(t, []string{entry.Filename}, dirNames(t, mem))
}

func TestSave_FailedRenameKeepsPreviousContent(t *testing.T) {
	ctx := context.Background()
	mem := afero.NewMemMapFs()
	fs := newFaultFs(mem)
	store := files.New(testDir, files.WithFs(fs), files.WithLogger(logging.NewNopLogger()))

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)

	fs.set(func(f *faultFs) { f.failRename = true })
	err = store.SaveEntry(ctx, entry.ID, "replacement")
	assert.True(t, errors.IsFileOperation(err))

	content, err := store.LoadEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EntryHeader, content)
	assert.Equal(t, []string{entry.Filename}, dirNames(t, mem))
}

func TestCreate_FailureLeavesNoFile(t *testing.T) {
	ctx := context.Background()
	mem := afero.NewMemMapFs()
	fs := newFaultFs(mem)
	log := logging.NewTestLogger(t)
	store := files.New(testDir, files.WithFs(fs), files.WithLogger(log.Logger))

	fs.set(func(f *faultFs) { f.failRename = true })
	_, err := store.CreateNewEntry(ctx)
	assert.True(t, errors.IsFileOperation(err))
	log.AssertContains(t, "Failed to create entry")

	fs.set(func(f *faultFs) { f.failRename = false })
	list, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, dirNames(t, mem))
}

func TestDirectoryInitFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	mem := afero.NewMemMapFs()
	fs := newFaultFs(mem)
	log := logging.NewTestLogger(t)
	store := files.New(testDir, files.WithFs(fs), files.WithLogger(log.Logger))

	fs.set(func(f *faultFs) { f.failMkdir = true })
	_, err := store.CreateNewEntry(ctx)
	assert.True(t, errors.IsFileOperation(err))
	_, err = store.LoadAllEntries(ctx)
	assert.True(t, errors.IsFileOperation(err))
	assert.False(t, store.EntryExists(ctx, uuid.New()))
	assert.True(t, log.HasEvent("error", "Failed to create entries directory"), log.Output())

	fs.set(func(f *faultFs) { f.failMkdir = false })
	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	assert.True(t, store.EntryExists(ctx, entry.ID))
}

func TestCanceledContext(t *testing.T) {
	store, fs := newMemStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CreateNewEntry(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.LoadAllEntries(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fs, testDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestConcurrentSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newMemStore(t)

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)

	versions := []string{strings.Repeat("a", 4096), strings.Repeat("b", 8192)}
	require.NoError(t, store.SaveEntry(ctx, entry.ID, versions[0]))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				assert.NoError(t, store.SaveEntry(ctx, entry.ID, versions[(w+i)%2]))
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				content, err := store.LoadEntry(ctx, entry.ID)
				if assert.NoError(t, err) {
					assert.Contains(t, versions, content)
				}
				list, err := store.LoadAllEntries(ctx)
				if assert.NoError(t, err) {
					assert.Len(t, list, 1)
				}
			}
		}()
	}
	wg.Wait()
}

func TestOsFs(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "Freewrite")
	store := files.New(dir, files.WithLogger(logging.NewNopLogger()))
	assert.Equal(t, dir, store.Dir())

	entry, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveEntry(ctx, entry.ID, "on disk"))

	data, err := os.ReadFile(filepath.Join(dir, entry.Filename))
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))

	info, err := os.Stat(filepath.Join(dir, entry.Filename))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.FilePermissions), info.Mode().Perm())

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, entry.Filename, names[0].Name())

	list, err := store.LoadAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "on disk", list[0].PreviewText)

	require.NoError(t, store.DeleteEntry(ctx, entry.ID))
	_, err = os.Stat(filepath.Join(dir, entry.Filename))
	assert.True(t, os.IsNotExist(err))
}

func TestCreateNewEntry_RepeatedIDNeverReplacesEntry(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("9b2d6a1e-0c3f-4f6e-8a71-5d4c3b2a1f00")
	store, fs := newMemStore(t,
		files.WithIDGenerator(func() uuid.UUID { return id }),
		files.WithClock(func() time.Time { return base }),
	)

	first, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveEntry(ctx, first.ID, "keep me"))

	_, err = store.CreateNewEntry(ctx)
	var resErr *errors.ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "create", resErr.Operation)

	assert.Equal(t, []string{first.Filename}, dirNames(t, fs))
	content, err := store.LoadEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "keep me", content)
}

func TestCreateNewEntry_RetriesRepeatedID(t *testing.T) {
	ctx := context.Background()
	taken := uuid.MustParse("9b2d6a1e-0c3f-4f6e-8a71-5d4c3b2a1f00")
	fresh := uuid.MustParse("3c1e8f52-93b0-4c8b-a3f4-6f1d2b9e7a10")
	ids := []uuid.UUID{taken, taken, fresh}
	store, fs := newMemStore(t, files.WithIDGenerator(func() uuid.UUID {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	first, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	require.Equal(t, taken, first.ID)

	second, err := store.CreateNewEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, second.ID)
	assert.Len(t, dirNames(t, fs), 2)
}

func TestWriteFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := newFaultFs(mem)
	path := filepath.Join("/exports", "index.md")
	require.NoError(t, afero.WriteFile(mem, path, []byte("old"), constants.FilePermissions))

	fs.set(func(f *faultFs) { f.failRename = true })
	err := files.WriteFile(fs, path, []byte("new"))
	assert.True(t, errors.IsFileOperation(err))

	data, err := afero.ReadFile(mem, path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	infos, err := afero.ReadDir(mem, "/exports")
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	fs.set(func(f *faultFs) { f.failRename = false })
	require.NoError(t, files.WriteFile(fs, path, []byte("new")))
	data, err = afero.ReadFile(mem, path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
