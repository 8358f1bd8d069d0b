package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lcc/internal/diag"
)

// diskCacheSchemaVersion invalidates stored payloads when their format
// changes. Bump it together with any DiskPayload edit.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists parse outcomes keyed by source content digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the stored outcome of parsing one file revision. The
// declarations themselves are not cached; a hit either confirms the file
// was clean or replays the recorded diagnostics.
type DiskPayload struct {
	Schema uint16
	Path   string
	Std    int
	Clean  bool
	Decls  int
	Diags  []diag.Diagnostic
}

// Matches reports whether the payload can stand in for a fresh parse of
// path under std.
func (p *DiskPayload) Matches(path string, std int) bool {
	return p != nil && p.Schema == diskCacheSchemaVersion && p.Path == path && p.Std == std
}

// OpenDiskCache initializes a disk cache under the user cache directory
// ($XDG_CACHE_HOME/app, falling back to ~/.cache/app).
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

func (c *DiskCache) pathFor(key [32]byte) string {
	// A "mods" subdirectory keeps payloads easy to inspect and clear.
	return filepath.Join(c.dir, "mods", hex.EncodeToString(key[:])+".mp")
}

// Put serializes payload under key, replacing any previous entry.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Rename is atomic, so readers never see a partial payload.
	return os.Rename(f.Name(), p)
}

// Get reads the payload stored under key into out. A missing entry is
// not an error; it reports false.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll discards every cached payload, useful after format changes.
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
