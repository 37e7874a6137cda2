package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileEntry struct {
	Value  jsoniter.RawMessage `json:"value"`
	Expiry time.Time           `json:"expiry"`
}

// File is a TTL cache persisted as one JSON file per key under a directory.
// Read and write failures are logged and treated as misses, never surfaced.
type File struct {
	dir    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewFile creates the cache directory if needed and returns the cache.
func NewFile(dir string, ttl time.Duration, logger *zap.Logger) (*File, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir, ttl: ttl, logger: logger.Named("filecache")}, nil
}

// Get unmarshals the cached value for key into out. It returns false on a
// miss, an expired entry, or an unreadable file.
func (f *File) Get(key string, out interface{}) bool {
	path := f.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		f.logger.Warn("Unreadable cache file, dropping it.", zap.String("path", path), zap.Error(err))
		_ = os.Remove(path)
		return false
	}
	if time.Now().After(entry.Expiry) {
		_ = os.Remove(path)
		return false
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		f.logger.Warn("Cache value does not match requested type.", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// Set marshals and stores a value under key.
func (f *File) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		f.logger.Warn("Failed to marshal cache value.", zap.Error(err))
		return
	}
	entry := fileEntry{Value: raw, Expiry: time.Now().Add(f.ttl)}
	data, err := json.Marshal(entry)
	if err != nil {
		f.logger.Warn("Failed to marshal cache entry.", zap.Error(err))
		return
	}
	if err := os.WriteFile(f.path(key), data, 0o644); err != nil {
		f.logger.Warn("Failed to write cache file.", zap.Error(err))
	}
}

// Delete removes the entry for key, if present.
func (f *File) Delete(key string) {
	_ = os.Remove(f.path(key))
}

// Clear removes every cache file in the directory.
func (f *File) Clear() {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".cache") {
			_ = os.Remove(filepath.Join(f.dir, e.Name()))
		}
	}
}

func (f *File) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(f.dir, hex.EncodeToString(sum[:])+".cache")
}

// Key derives a stable cache key from its parts.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
