package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_MissingConfigFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(home, "missing.toml"),
	})
	if err == nil {
		t.Fatal("Run returned nil error for a missing config")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %q, want it to mention load config", err.Error())
	}
}
