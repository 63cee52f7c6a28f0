package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("backend = %q", cfg.BackendURL)
	}
	if cfg.Timeout() != 600*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskview.yaml")
	os.WriteFile(path, []byte("backend_url: http://agent:9000\ntimeout_seconds: 30\n"), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != "http://agent:9000" {
		t.Errorf("backend = %q", cfg.BackendURL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
	// Unset fields keep defaults
	if cfg.LiveViewURL != "http://localhost:6080/vnc.html" {
		t.Errorf("live view = %q", cfg.LiveViewURL)
	}
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskview.yaml")
	os.WriteFile(path, []byte("backend_url: x\nbogus_key: y\n"), 0o644)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected strict decode to reject unknown key")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskview.yaml")
	os.WriteFile(path, []byte("backend_url: http://file:1\n"), 0o644)
	t.Setenv("TASKVIEW_BACKEND_URL", "http://env:2")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != "http://env:2" {
		t.Errorf("backend = %q", cfg.BackendURL)
	}
}
