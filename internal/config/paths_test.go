package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestDataDir(t *testing.T) {
	t.Run("derived from HOME", func(t *testing.T) {
		t.Setenv("HOME", "/home/alice")

		dir, err := DataDir("")
		if err != nil {
			t.Fatalf("DataDir failed: %v", err)
		}
		want := filepath.Join("/home/alice", ".local", "taskmanager")
		if dir != want {
			t.Errorf("DataDir: got %q, want %q", dir, want)
		}
	})

	t.Run("explicit dir wins", func(t *testing.T) {
		t.Setenv("HOME", "/home/alice")

		dir, err := DataDir("/var/tasks")
		if err != nil {
			t.Fatalf("DataDir failed: %v", err)
		}
		if dir != "/var/tasks" {
			t.Errorf("DataDir: got %q, want /var/tasks", dir)
		}
	})

	t.Run("missing HOME is an error", func(t *testing.T) {
		t.Setenv("HOME", "")

		if _, err := DataDir(""); err == nil {
			t.Error("DataDir should fail without HOME")
		}
	})

	t.Run("explicit dir does not need HOME", func(t *testing.T) {
		t.Setenv("HOME", "")

		dir, err := DataDir("/var/tasks")
		if err != nil {
			t.Fatalf("DataDir failed: %v", err)
		}
		if dir != "/var/tasks" {
			t.Errorf("DataDir: got %q, want /var/tasks", dir)
		}
	})
}

func TestEnsureDataDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/home/alice/.local/taskmanager"

	if err := EnsureDataDir(fsys, dir); err != nil {
		t.Fatalf("EnsureDataDir failed: %v", err)
	}
	info, err := fsys.Stat(dir)
	if err != nil {
		t.Fatalf("Stat after EnsureDataDir failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDataDir did not create a directory")
	}

	// An already-existing directory is not an error.
	if err := EnsureDataDir(fsys, dir); err != nil {
		t.Errorf("EnsureDataDir on existing dir failed: %v", err)
	}
}
