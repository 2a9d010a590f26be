package cmd

import (
	"strings"
	"testing"
)

func TestConfigSetAndShow(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := runSnds(t, "config", "set", "dir", "/srv/snds")
	if err != nil {
		t.Fatalf("config set: %v", err)
	}
	if !strings.Contains(stdout, "Set dir = /srv/snds") {
		t.Errorf("unexpected set output: %q", stdout)
	}

	stdout, _, err = runSnds(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(stdout, "dir: /srv/snds") {
		t.Errorf("show should include the saved value, got:\n%s", stdout)
	}

	stdout, _, err = runSnds(t, "config", "get", "dir")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(stdout) != "/srv/snds" {
		t.Errorf("config get dir = %q, want /srv/snds", strings.TrimSpace(stdout))
	}
}

func TestConfigSetValidation(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown key", args: []string{"config", "set", "nope", "x"}},
		{name: "bad limit", args: []string{"config", "set", "limit", "-1"}},
		{name: "non-numeric limit", args: []string{"config", "set", "limit", "abc"}},
		{name: "bad output", args: []string{"config", "set", "output", "xml"}},
		{name: "bad color", args: []string{"config", "set", "color", "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runSnds(t, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	path := isolateConfig(t)

	stdout, _, err := runSnds(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("output should contain %q, got:\n%s", path, stdout)
	}
	if !strings.Contains(stdout, "(file does not exist)") {
		t.Errorf("output should note the file is absent, got:\n%s", stdout)
	}
}
