package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileExt = ".json"

// FileStore keeps one <key>.json file per entry. An entry is fresh while its
// modification time is within maxAge.
type FileStore struct {
	dir    string
	maxAge time.Duration
	now    func() time.Time
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string, maxAge time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir, maxAge: maxAge, now: time.Now}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

func (s *FileStore) fresh(info os.FileInfo) bool {
	return s.now().Sub(info.ModTime()) <= s.maxAge
}

func (s *FileStore) Get(_ context.Context, key string, dst any) (bool, error) {
	p := s.path(key)
	info, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		cacheMisses.WithLabelValues("file").Inc()
		return false, nil
	}
	if err != nil {
		cacheErrors.WithLabelValues("file", "get").Inc()
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	if !s.fresh(info) {
		cacheMisses.WithLabelValues("file").Inc()
		return false, nil
	}

	b, err := os.ReadFile(p)
	if err != nil || json.Unmarshal(b, dst) != nil {
		// Corrupt or vanished entries are treated as absent.
		cacheMisses.WithLabelValues("file").Inc()
		return false, nil
	}
	cacheHits.WithLabelValues("file").Inc()
	return true, nil
}

// Set writes through a temp file so readers never see a partial entry.
func (s *FileStore) Set(_ context.Context, key string, value any) error {
	b, err := encode(value)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		cacheErrors.WithLabelValues("file", "set").Inc()
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		cacheErrors.WithLabelValues("file", "set").Inc()
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		cacheErrors.WithLabelValues("file", "set").Inc()
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// Clear removes every entry but leaves unrelated files alone.
func (s *FileStore) Clear(_ context.Context) error {
	_, err := s.removeWhere(func(os.FileInfo) bool { return true })
	return err
}

// Sweep removes expired entries and returns how many were deleted.
func (s *FileStore) Sweep(_ context.Context) (int, error) {
	return s.removeWhere(func(info os.FileInfo) bool { return !s.fresh(info) })
}

func (s *FileStore) removeWhere(match func(os.FileInfo) bool) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read cache dir: %w", err)
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		info, err := e.Info()
		if err != nil || !match(info) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
