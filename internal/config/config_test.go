package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "react.dev"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "react.dev" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Manifest.File != DefaultManifest {
		t.Errorf("Manifest.File = %q, want default", cfg.Manifest.File)
	}
	if cfg.Serve.Port != DefaultPort || cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve = %+v, want defaults", cfg.Serve)
	}
	if cfg.ServeAddress() != "localhost:4000" {
		t.Errorf("ServeAddress() = %q", cfg.ServeAddress())
	}
}

func TestLoadExplicit(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"manifest": {"file": "sidebars/reference.json"},
		"content": {"dir": "src/content"},
		"serve": {"port": 8080, "host": "0.0.0.0"}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := cfg.ManifestPath(); got != filepath.Join(dir, "sidebars/reference.json") {
		t.Errorf("ManifestPath() = %q", got)
	}
	if got := cfg.ContentPath(); got != filepath.Join(dir, "src/content") {
		t.Errorf("ContentPath() = %q", got)
	}
	if cfg.ServeAddress() != "0.0.0.0:8080" {
		t.Errorf("ServeAddress() = %q", cfg.ServeAddress())
	}
}

func TestLoadS3(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"manifest": {"s3": {"bucket": "docs-deploy", "key": "nav/sidebar.json"}}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.HasS3() {
		t.Error("HasS3() = false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of missing config succeeded")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": `)
	if _, err := Load(dir); err == nil {
		t.Error("Load of malformed config succeeded")
	}
}

func TestValidateRejects(t *testing.T) {
	cfg := New()
	cfg.Serve.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted out-of-range port")
	}

	cfg = New()
	cfg.Manifest.S3.Bucket = "docs-deploy" // key missing
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted S3 config without key")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "content", "reference")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	// Resolve symlinks: t.TempDir may sit behind one on some platforms.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}
