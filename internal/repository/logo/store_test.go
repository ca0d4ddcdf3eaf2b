package logo

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/kailas-cloud/loksabha/internal/domain"
)

var png = []byte("\x89PNG\r\n\x1a\n")

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"BJP.png":      {Data: png},
		"INC.png":      {Data: append([]byte{}, png...)},
		"notes.txt":    {Data: []byte("x")},
		"sub/AAP.png":  {Data: png},
		"..hidden.png": {Data: png},
	}
}

func TestOpen_Found(t *testing.T) {
	logo, err := New(testFS()).Open(context.Background(), "BJP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo.Abbreviation != "BJP" || !bytes.Equal(logo.Data, png) {
		t.Errorf("got %+v", logo)
	}
}

func TestOpen_NotFound(t *testing.T) {
	tests := []struct {
		name string
		abbr string
	}{
		{"missing", "XYZ"},
		{"empty", ""},
		{"traversal", "../etc/passwd"},
		{"nested", "sub/AAP"},
		{"backslash", `sub\AAP`},
		{"dotdot", ".."},
		{"wrong extension", "notes"},
	}
	s := New(testFS())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(context.Background(), tt.abbr)
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if err := New(testFS()).Check(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewDir(t.TempDir() + "/missing").Check(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
