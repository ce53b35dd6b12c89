package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/prismview/pkg/cache"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIsFileBackend(t *testing.T) {
	for backend, want := range map[string]bool{
		"":                 true,
		cache.BackendFile:  true,
		cache.BackendNone:  false,
		cache.BackendRedis: false,
		cache.BackendMongo: false,
	} {
		if got := isFileBackend(backend); got != want {
			t.Errorf("isFileBackend(%q) = %v, want %v", backend, got, want)
		}
	}
}

func TestCacheClearRemovesRenderedEntries(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("render", "hue-wheel", "--dir", env.out); err != nil {
		t.Fatalf("render: %v", err)
	}

	dir := filepath.Join(env.cacheHome, appName)
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	entries, _, err := fc.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if entries == 0 {
		t.Fatal("render left no cache entries")
	}

	if err := env.run("cache", "stats"); err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	if err := env.run("cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if entries, _, _ = fc.Stats(); entries != 0 {
		t.Errorf("entries after clear = %d, want 0", entries)
	}
}

func TestCacheNoCacheLeavesDirectoryEmpty(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("render", "gradients", "--dir", env.out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.cacheHome, appName)); !os.IsNotExist(err) {
		t.Errorf("cache directory created with --no-cache (stat err = %v)", err)
	}
}
