package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path wins and must be the local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config.toml anywhere nearby

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Volume != 100 {
		t.Errorf("Volume = %d, want 100", cfg.Volume)
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true by default")
	}
	if cfg.DefaultFolder != "" {
		t.Errorf("DefaultFolder = %q, want empty", cfg.DefaultFolder)
	}
}

func TestLoad_LocalConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("default_folder = \"/music\"\nvolume = 60\nrecursive = false\n")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DefaultFolder != "/music" {
		t.Errorf("DefaultFolder = %q, want %q", cfg.DefaultFolder, "/music")
	}
	if cfg.Volume != 60 {
		t.Errorf("Volume = %d, want 60", cfg.Volume)
	}
	if cfg.Recursive {
		t.Error("Recursive = true, want false")
	}
}

func TestLoad_ClampsVolume(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("volume = 250\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Volume != 100 {
		t.Errorf("Volume = %d, want clamped to 100", cfg.Volume)
	}
}
