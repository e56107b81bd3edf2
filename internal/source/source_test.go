package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestReadWrite_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.md")

	if err := Write(path, "alice: hi\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "alice: hi\n" {
		t.Errorf("expected %q, got %q", "alice: hi\n", got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil || !strings.Contains(err.Error(), "no such file") {
		t.Errorf("expected missing-file error, got %v", err)
	}
}

func TestRead_Directory(t *testing.T) {
	_, err := Read(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Errorf("expected directory error, got %v", err)
	}
}

func TestRead_Zstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.md.zst")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatalf("encoder: %v", err)
	}
	if _, err := enc.Write([]byte("alice: compressed hi\n")); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "alice: compressed hi\n" {
		t.Errorf("expected decompressed content, got %q", got)
	}
}

func TestWrite_LeavesNoTempOnSuccess(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, "out.md"), "data"); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.md" {
		t.Errorf("expected only out.md, got %v", entries)
	}
}

func TestDetectUser(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		err  error
	}{
		{
			"user followed by agent",
			"alice: hi\nGitHub Copilot: hello",
			"alice", nil,
		},
		{
			"first speaker wins",
			"bob: hey\nalice: hi\nGitHub Copilot: hello",
			"bob", nil,
		},
		{
			"user without agent reply",
			"alice: hi\nalice: anyone there?",
			"", ErrNoSpeakers,
		},
		{
			"agent only",
			"GitHub Copilot: hello",
			"", ErrNoSpeakers,
		},
		{
			"empty document",
			"",
			"", ErrNoSpeakers,
		},
		{
			"prose with colons is not a speaker",
			"note: this has spaces before\nGitHub Copilot: hello",
			"note", nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectUser(tt.text, "GitHub Copilot")
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
