package cache

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsift/gitsift/internal/history"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testCommits() []history.Commit {
	return []history.Commit{
		{
			Hash:    "abc123",
			Author:  "Alice",
			Date:    time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
			Message: "fix startup crash",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 8, Deleted: 2},
			},
		},
		{
			Hash:    "def456",
			Author:  "Bob",
			Date:    time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC),
			Message: "wire new config flag",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 6, Deleted: 6},
				{Path: "config.json", Added: 2, Deleted: 0},
			},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(path, time.Hour, testLogger())
	require.NoError(t, err)
	defer store.Close()

	key := Key("local", "/tmp/repo", "abc123", 90, 0)
	require.NoError(t, store.Put(key, testCommits()))

	got, ok := store.Get(key)
	require.True(t, ok, "freshly written entry should be a hit")
	assert.Equal(t, testCommits(), got)
}

func TestStoreMissOnUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(path, time.Hour, testLogger())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Get(Key("local", "/tmp/repo", "abc123", 90, 0))
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(path, time.Nanosecond, testLogger())
	require.NoError(t, err)
	defer store.Close()

	key := Key("local", "/tmp/repo", "abc123", 90, 0)
	require.NoError(t, store.Put(key, testCommits()))

	_, ok := store.Get(key)
	assert.False(t, ok, "entry past its TTL should be a miss")
}

func TestStoreKeyIncludesHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(path, time.Hour, testLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(Key("local", "/tmp/repo", "abc123", 90, 0), testCommits()))

	// A new commit moves HEAD, which must change the key.
	_, ok := store.Get(Key("local", "/tmp/repo", "fff999", 90, 0))
	assert.False(t, ok)
}

func TestStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	store, err := Open(path, time.Hour, testLogger())
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
