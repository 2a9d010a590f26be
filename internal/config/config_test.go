package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantErr    bool
		wantDir    string
		wantOutput string
		wantLimit  *int
	}{
		{
			name: "valid config",
			content: `dir: /srv/snds
output: json
limit: 10`,
			wantDir:    "/srv/snds",
			wantOutput: "json",
			wantLimit:  intPtr(10),
		},
		{
			name:    "empty config",
			content: "",
		},
		{
			name:    "invalid yaml",
			content: "invalid: [yaml",
			wantErr: true,
		},
		{
			name:      "zero limit is a real value",
			content:   "limit: 0",
			wantLimit: intPtr(0),
		},
		{
			name:    "partial config",
			content: "color: never",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")

			if tt.content != "" {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o600); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}
			}

			cfg, err := LoadFromPath(configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFromPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if cfg.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", cfg.Dir, tt.wantDir)
			}
			if cfg.GetOutput() != tt.wantOutput {
				t.Errorf("GetOutput() = %q, want %q", cfg.GetOutput(), tt.wantOutput)
			}

			limit, ok := cfg.GetLimit()
			if tt.wantLimit == nil {
				if ok {
					t.Errorf("GetLimit() = %d, want unset", limit)
				}
			} else {
				if !ok || limit != *tt.wantLimit {
					t.Errorf("GetLimit() = %d/%v, want %d/true", limit, ok, *tt.wantLimit)
				}
			}
		})
	}
}

func TestLoadFromPathNonExistent(t *testing.T) {
	cfg, err := LoadFromPath("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("LoadFromPath() should return empty config for nonexistent file, got error: %v", err)
	}
	if cfg == nil {
		t.Error("LoadFromPath() returned nil config")
	}
}

func TestSaveToPathRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Dir:    "/srv/snds",
		Limit:  intPtr(50),
		Output: "yaml",
		Color:  "never",
	}

	if err := cfg.SaveToPath(configPath); err != nil {
		t.Fatalf("SaveToPath() error = %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("failed to stat config file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file permissions = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Dir != cfg.Dir || loaded.Output != cfg.Output || loaded.Color != cfg.Color {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
	if limit, ok := loaded.GetLimit(); !ok || limit != 50 {
		t.Errorf("GetLimit() = %d/%v, want 50/true", limit, ok)
	}
}

func TestSetConfigPathFunc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	restore := SetConfigPathFunc(func() (string, error) { return path, nil })
	defer SetConfigPathFunc(restore)

	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if got != path {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, path)
	}
}

func intPtr(n int) *int { return &n }
