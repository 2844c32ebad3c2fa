package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDirResolver(t *testing.T) {
	root := t.TempDir()
	write := func(rel, body string) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("learn.md", "learn body")
	write("reference/react.mdx", "react body")
	write("reference/react/hooks/index.md", "hooks body")

	r := NewDirResolver(root)
	ctx := context.Background()

	tests := []struct {
		path string
		want string
	}{
		{"/learn", "learn body"},
		{"/reference/react", "react body"},
		{"/reference/react/hooks", "hooks body"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(ctx, tt.path)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.path, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	_, err := r.Resolve(ctx, "/missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Resolve(missing) error = %v, want fs.ErrNotExist", err)
	}
}
