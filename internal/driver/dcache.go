package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"declet/internal/pipeline"
)

// Current schema version, increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest = [32]byte

// DiskCache stores analysis outcomes keyed by content hash on disk, so a
// clean re-check of unchanged content can be skipped.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the cached outcome of a full analysis run.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	ContentHash Digest

	// Final pipeline state (pipeline.State)
	State uint8

	TokenCount int
	DeclCount  int
	DiagCount  int

	// Broken marks runs that stopped before validating clean.
	Broken bool
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Entries live under runs/ so the cache root stays easy to clear.
func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "runs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload to the disk cache. The entry is
// written to a temp file and renamed into place so readers never see a
// partial write.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil || payload == nil {
		return nil
	}
	blob, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dest := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	defer os.Remove(name)

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(name, dest)
}

// Get reads a payload from the disk cache. A missing entry is not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	blob, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(blob, out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func resultToDiskPayload(res *CheckResult) *DiskPayload {
	if res == nil || res.File == nil {
		return nil
	}
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        res.Path,
		ContentHash: res.File.Hash,
		State:       uint8(res.State),
		TokenCount:  len(res.Tokens),
		DeclCount:   len(res.Decls),
		DiagCount:   res.Bag.Len(),
		Broken:      res.State != pipeline.StateValidatedOk,
	}
}
