package animeverse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Smallest valid PNG header bytes; enough for content-type sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func TestEncodeMediaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(path, pngBytes, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	uri, err := EncodeMediaFile(path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("expected png data URI, got %q", uri[:min(len(uri), 40)])
	}
}

func TestEncodeMediaFileRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text, clearly"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := EncodeMediaFile(path); err == nil {
		t.Fatalf("expected rejection for non-image file")
	}
}

func TestEncodeMediaFileMissing(t *testing.T) {
	if _, err := EncodeMediaFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
