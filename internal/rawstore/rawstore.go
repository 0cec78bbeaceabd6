package rawstore

import (
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"
)

// Entry describes one stored page snapshot. Snapshots exist only to
// support fallback extraction and are purged per the retention policy,
// so no eviction beyond age-based purge is needed.
type Entry struct {
    URL     string    `json:"url"`
    SavedAt time.Time `json:"saved_at"`
}

// Store keeps raw page snapshots on disk as <key>.html plus
// <key>.meta.json, where key is sha256(url).
type Store struct {
    Dir string
}

func (s *Store) ensureDir() error {
    if s == nil || s.Dir == "" {
        return errors.New("snapshot dir not configured")
    }
    return os.MkdirAll(s.Dir, 0o700)
}

func (s *Store) key(url string) string {
    h := sha256.Sum256([]byte(url))
    return hex.EncodeToString(h[:])
}

func (s *Store) metaPath(key string) string { return filepath.Join(s.Dir, key+".meta.json") }
func (s *Store) bodyPath(key string) string { return filepath.Join(s.Dir, key+".html") }

// Save stores a snapshot. The body is written first so a crash between
// the two writes leaves no dangling metadata.
func (s *Store) Save(url string, body []byte) error {
    if err := s.ensureDir(); err != nil {
        return err
    }
    key := s.key(url)
    if err := os.WriteFile(s.bodyPath(key), body, 0o600); err != nil {
        return fmt.Errorf("write snapshot body: %w", err)
    }
    meta := Entry{URL: url, SavedAt: time.Now().UTC()}
    tmp := s.metaPath(key) + ".tmp"
    f, err := os.Create(tmp)
    if err != nil {
        return fmt.Errorf("create snapshot meta: %w", err)
    }
    if err := json.NewEncoder(f).Encode(&meta); err != nil {
        f.Close()
        return fmt.Errorf("encode snapshot meta: %w", err)
    }
    if err := f.Close(); err != nil {
        return err
    }
    return os.Rename(tmp, s.metaPath(key))
}

// Load returns the stored snapshot body for url.
func (s *Store) Load(url string) ([]byte, error) {
    if err := s.ensureDir(); err != nil {
        return nil, err
    }
    return os.ReadFile(s.bodyPath(s.key(url)))
}

// PurgeByAge removes snapshots older than maxAge and returns how many
// entries were deleted. maxAge of zero removes everything.
func (s *Store) PurgeByAge(maxAge time.Duration) (int, error) {
    if s == nil || s.Dir == "" {
        return 0, nil
    }
    entries, err := os.ReadDir(s.Dir)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return 0, nil
        }
        return 0, err
    }
    cutoff := time.Now().UTC().Add(-maxAge)
    removed := 0
    for _, de := range entries {
        name := de.Name()
        if !strings.HasSuffix(name, ".meta.json") {
            continue
        }
        metaPath := filepath.Join(s.Dir, name)
        var meta Entry
        b, err := os.ReadFile(metaPath)
        if err != nil || json.Unmarshal(b, &meta) != nil {
            continue
        }
        if maxAge > 0 && meta.SavedAt.After(cutoff) {
            continue
        }
        key := strings.TrimSuffix(name, ".meta.json")
        _ = os.Remove(filepath.Join(s.Dir, key+".html"))
        if err := os.Remove(metaPath); err == nil {
            removed++
        }
    }
    return removed, nil
}

// Clear removes the whole snapshot directory.
func (s *Store) Clear() error {
    if s == nil || s.Dir == "" {
        return nil
    }
    return os.RemoveAll(s.Dir)
}
