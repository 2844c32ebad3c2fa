package main

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/vango-dev/docnav/internal/errors"
	"github.com/vango-dev/docnav/pkg/manifest"
	"github.com/vango-dev/docnav/pkg/nav"
)

func buildErr(t *testing.T, entries []nav.Entry) error {
	t.Helper()
	_, err := nav.Build(entries)
	if err == nil {
		t.Fatal("Build succeeded, want error")
	}
	return err
}

func TestCodedErrorValidation(t *testing.T) {
	tests := []struct {
		name     string
		entries  []nav.Entry
		wantCode string
	}{
		{
			name: "duplicate path",
			entries: []nav.Entry{
				{Title: "A", Path: "/learn"},
				{Title: "B", Path: "/learn"},
			},
			wantCode: "N001",
		},
		{
			name: "section header with path",
			entries: []nav.Entry{
				{HasSectionHeader: true, SectionHeader: "APIs", Path: "/apis"},
			},
			wantCode: "N002",
		},
		{
			name:     "missing title",
			entries:  []nav.Entry{{Path: "/learn"}},
			wantCode: "N003",
		},
		{
			name:     "invalid path",
			entries:  []nav.Entry{{Title: "A", Path: "/a\\b"}},
			wantCode: "N004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := codedError(buildErr(t, tt.entries))

			var de *errors.Error
			if !stderrors.As(err, &de) {
				t.Fatalf("codedError returned uncoded %T: %v", err, err)
			}
			if de.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", de.Code, tt.wantCode)
			}
			if de.Detail == "" {
				t.Error("Detail is empty")
			}

			// The original validation error stays reachable.
			var ve *nav.ValidationError
			if !stderrors.As(err, &ve) {
				t.Error("wrapped ValidationError lost")
			}
		})
	}
}

func TestCodedErrorManifest(t *testing.T) {
	_, decodeErr := manifest.Parse([]byte(`{"title": `))
	if decodeErr == nil {
		t.Fatal("Parse succeeded, want error")
	}

	var de *errors.Error
	if !stderrors.As(codedError(decodeErr), &de) || de.Code != "N021" {
		t.Errorf("decode failure coded as %+v, want N021", de)
	}

	readErr := manifest.NewFileSource("/nonexistent/sidebar.json")
	if _, err := readErr.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch succeeded, want error")
	} else if !stderrors.As(codedError(err), &de) || de.Code != "N020" {
		t.Errorf("read failure coded as %+v, want N020", de)
	}
}

func TestCodedErrorPassthrough(t *testing.T) {
	if codedError(nil) != nil {
		t.Error("codedError(nil) != nil")
	}

	plain := stderrors.New("dial tcp: connection refused")
	if got := codedError(plain); got != plain {
		t.Errorf("unclassified error rewrapped: %v", got)
	}

	coded := errors.New("N060")
	if got := codedError(coded); got != error(coded) {
		t.Errorf("already-coded error rewrapped: %v", got)
	}
}
