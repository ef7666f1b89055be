package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPriority(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writeFile(t, low, "wall.jpg", "low")
	writeFile(t, high, "wall.jpg", "high")
	writeFile(t, low, "textures/brick.jpg", "brick")

	m := NewManager()
	if err := m.AddDir(low); err != nil {
		t.Fatal(err)
	}
	if err := m.AddDir(high); err != nil {
		t.Fatal(err)
	}

	data, err := m.Load("wall.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "high" {
		t.Errorf("Load = %q, want last added dir to win", data)
	}

	data, err = m.Load("textures/brick.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "brick" {
		t.Errorf("Load = %q, want fallback to lower priority dir", data)
	}

	if dirs := m.Dirs(); len(dirs) != 2 || dirs[0] != high {
		t.Errorf("Dirs = %v, want [%s %s]", dirs, high, low)
	}
}

func TestLoadAbsolutePath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "abs.png", "abs")

	m := NewManager()
	data, err := m.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "abs" {
		t.Errorf("Load = %q", data)
	}
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	_, err := m.Load("missing.jpg")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "first")

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Load("a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := m.Load("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("Load = %q, want cached content", data)
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats = (%d, %d), want (1, 1)", hits, misses)
	}

	m.Close()
	if hits, misses := m.Stats(); hits != 0 || misses != 0 {
		t.Errorf("Stats after Close = (%d, %d), want zeros", hits, misses)
	}
}

func TestAddDirErrors(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing dir")
	}
	file := writeFile(t, t.TempDir(), "file", "x")
	if err := m.AddDir(file); err == nil {
		t.Error("expected error for file path")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				c.Set("k", []byte("v"))
				c.Get("k")
			}
		}()
	}
	wg.Wait()

	hits, misses := c.Stats()
	if hits+misses != 800 {
		t.Errorf("hits+misses = %d, want 800", hits+misses)
	}
}
