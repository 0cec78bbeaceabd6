package rawstore

import (
    "path/filepath"
    "testing"
    "time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
    s := &Store{Dir: t.TempDir()}
    url := "https://www.linkedin.com/in/jane"
    if err := s.Save(url, []byte("<html>x</html>")); err != nil {
        t.Fatalf("save: %v", err)
    }
    body, err := s.Load(url)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if string(body) != "<html>x</html>" {
        t.Fatalf("body = %q", body)
    }
}

func TestPurgeByAge_ZeroRemovesEverything(t *testing.T) {
    s := &Store{Dir: t.TempDir()}
    if err := s.Save("https://www.linkedin.com/in/jane", []byte("x")); err != nil {
        t.Fatalf("save: %v", err)
    }
    n, err := s.PurgeByAge(0)
    if err != nil {
        t.Fatalf("purge: %v", err)
    }
    if n != 1 {
        t.Fatalf("removed = %d, want 1", n)
    }
    if _, err := s.Load("https://www.linkedin.com/in/jane"); err == nil {
        t.Fatal("expected snapshot gone after purge")
    }
}

func TestPurgeByAge_KeepsFreshEntries(t *testing.T) {
    s := &Store{Dir: t.TempDir()}
    if err := s.Save("https://www.linkedin.com/in/jane", []byte("x")); err != nil {
        t.Fatalf("save: %v", err)
    }
    n, err := s.PurgeByAge(24 * time.Hour)
    if err != nil {
        t.Fatalf("purge: %v", err)
    }
    if n != 0 {
        t.Fatalf("removed = %d, want 0", n)
    }
}

func TestPurgeByAge_MissingDirIsFine(t *testing.T) {
    s := &Store{Dir: filepath.Join(t.TempDir(), "never-created")}
    if _, err := s.PurgeByAge(time.Hour); err != nil {
        t.Fatalf("missing dir should not error: %v", err)
    }
}
