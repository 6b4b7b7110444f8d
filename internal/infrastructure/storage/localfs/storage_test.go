package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

func writeFile(t *testing.T, base, rel string) {
	t.Helper()
	full := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte("content of "+rel), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestListReturnsSortedRelativePaths(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "inbox/beta/statement.html")
	writeFile(t, base, "inbox/acme/inquiry.pdf")
	writeFile(t, base, "inbox/readme.txt")

	store, err := New(base)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	paths, err := store.List(context.Background(), "inbox", 6)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"inbox/acme/inquiry.pdf", "inbox/beta/statement.html", "inbox/readme.txt"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("got %v, want %v", paths, want)
		}
	}
}

func TestListSkipsFoldersBelowMaxDepth(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "inbox/top.pdf")
	writeFile(t, base, "inbox/deep/more/hidden.pdf")

	store, err := New(base)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	paths, err := store.List(context.Background(), "inbox", 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, p := range paths {
		if p == "inbox/deep/more/hidden.pdf" {
			t.Fatalf("file below maxDepth must not be listed: %v", paths)
		}
	}
}

func TestListMissingPrefixIsEmpty(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	paths, err := store.List(context.Background(), "no-such-folder", 6)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestFetchReadsFileBytes(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "inbox/acme/inquiry.pdf")

	store, err := New(base)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	content, err := store.Fetch(context.Background(), "inbox/acme/inquiry.pdf")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(content) != "content of inbox/acme/inquiry.pdf" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestFetchMissingFileIsDocumentNotFound(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = store.Fetch(context.Background(), "inbox/gone.pdf")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}
