package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load returned nil error for a missing config")
	}
	if !strings.Contains(err.Error(), "config not found") {
		t.Fatalf("Load error = %q, want it to name the missing config", err.Error())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
email = "  user@example.com  "
password = "hunter2"
user_id = 42
refresh_seconds = 120
proxy_url = "  socks5://127.0.0.1:1080  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Email != "user@example.com" {
		t.Fatalf("Email = %q, want %q", cfg.Email, "user@example.com")
	}
	if cfg.Password != "hunter2" {
		t.Fatalf("Password = %q, want %q", cfg.Password, "hunter2")
	}
	if cfg.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", cfg.UserID)
	}
	if cfg.Refresh != 120*time.Second {
		t.Fatalf("Refresh = %v, want 120s", cfg.Refresh)
	}
	if cfg.ProxyURL != "socks5://127.0.0.1:1080" {
		t.Fatalf("ProxyURL = %q, want trimmed proxy URL", cfg.ProxyURL)
	}
}

func TestLoad_RefreshDefaultsWhenOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
email = "user@example.com"
password = "hunter2"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Refresh != time.Duration(defaultRefreshSeconds)*time.Second {
		t.Fatalf("Refresh = %v, want %ds default", cfg.Refresh, defaultRefreshSeconds)
	}
	if cfg.UserID != 0 {
		t.Fatalf("UserID = %d, want 0 when omitted", cfg.UserID)
	}
}

func TestLoad_RequiresCredentials(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing email", `password = "hunter2"`, "email is required"},
		{"missing password", `email = "user@example.com"`, "password is required"},
		{"blank email", "email = \"   \"\npassword = \"hunter2\"", "email is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load returned nil error, want a required-field error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`email = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
