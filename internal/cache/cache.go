package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/gitsift/gitsift/internal/history"
)

const bucketName = "history"

// Store caches fetched commit history in a local bbolt file, so
// repeated runs against the same repository skip the git or API round
// trip while the history is fresh.
type Store struct {
	db     *bolt.DB
	ttl    time.Duration
	logger *logrus.Logger
}

// Open opens (creating if needed) the cache database at path. Entries
// older than ttl are treated as misses.
func Open(path string, ttl time.Duration, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache at %s: %w", path, err)
	}

	return &Store{db: db, ttl: ttl, logger: logger}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key identifies one fetch: the source kind, the repository, the HEAD
// commit at fetch time, and the history window. Any new commit moves
// HEAD and naturally invalidates the entry.
func Key(source, repo, head string, days, maxCommits int) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d", source, repo, head, days, maxCommits)
}

type entry struct {
	CachedAt time.Time        `json:"cached_at"`
	Commits  []history.Commit `json:"commits"`
}

// Get returns the cached commits for key, reporting whether a live
// entry was found.
func (s *Store) Get(key string) ([]history.Commit, bool) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		if raw := bucket.Get([]byte(key)); raw != nil {
			data = make([]byte, len(raw))
			copy(data, raw)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.WithError(err).Debug("discarding unreadable cache entry")
		return nil, false
	}

	if time.Since(e.CachedAt) > s.ttl {
		s.logger.WithField("key", key).Debug("cache entry expired")
		return nil, false
	}

	return e.Commits, true
}

// Put stores commits under key, stamped with the current time.
func (s *Store) Put(key string, commits []history.Commit) error {
	data, err := json.Marshal(entry{CachedAt: time.Now(), Commits: commits})
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("creating cache bucket: %w", err)
		}
		return bucket.Put([]byte(key), data)
	})
}
