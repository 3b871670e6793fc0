package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"obj", []string{"obj"}},
		{"svg,obj,json", []string{"svg", "obj", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCacheDirStructure(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Setenv("XDG_CACHE_HOME", customCache)
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_CACHE_HOME")
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := &CLI{Logger: newLogger(os.Stderr, LogInfo), Config: DefaultConfig()}
	root := c.RootCommand()

	want := []string{"generate", "panel", "preset", "cache", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
