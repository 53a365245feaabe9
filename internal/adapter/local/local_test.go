package local

import (
	"context"
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/testutil"
)

func fixedOwner(name string) OwnerLookup {
	return func(os.FileInfo) string { return name }
}

func newTestAdapter(t *testing.T) (*Adapter, string) {
	t.Helper()

	root := t.TempDir()
	a, err := New(root, WithOwnerLookup(fixedOwner("foobar")))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, root
}

func TestNew(t *testing.T) {
	root := t.TempDir()

	if _, err := New(filepath.Join(root, "missing")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	file := testutil.CreateTestFile(t, root, "file.txt", []byte("x"))
	if _, err := New(file); !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("expected ErrNotDirectory, got %v", err)
	}
}

func TestAdapter_Stat(t *testing.T) {
	a, root := newTestAdapter(t)

	mtime := time.Date(2018, 2, 7, 18, 55, 54, 0, time.UTC)
	file := testutil.CreateTestFileWithSize(t, root, "bar.img", 15000)
	testutil.SetModTime(t, file, mtime)
	testutil.CreateTestDir(t, root, "foo")

	meta, err := a.Stat(context.Background(), "/bar.img")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if meta.Kind != domain.PathKindFile {
		t.Errorf("Kind = %v, want file", meta.Kind)
	}
	if meta.Size != 15000 {
		t.Errorf("Size = %d, want 15000", meta.Size)
	}
	if !meta.LastModified.Equal(mtime) {
		t.Errorf("LastModified = %v, want %v", meta.LastModified, mtime)
	}
	if meta.LastWriter != "foobar" {
		t.Errorf("LastWriter = %q, want foobar", meta.LastWriter)
	}

	dirMeta, err := a.Stat(context.Background(), "foo")
	if err != nil {
		t.Fatalf("Stat(dir) error = %v", err)
	}
	if dirMeta.Kind != domain.PathKindFolder || dirMeta.Size != 0 {
		t.Errorf("unexpected folder metadata: %+v", dirMeta)
	}
}

func TestAdapter_StatSymlink(t *testing.T) {
	a, root := newTestAdapter(t)

	testutil.CreateTestFile(t, root, "target.txt", []byte("hello"))
	testutil.CreateSymlink(t, root, "link", "target.txt")

	meta, err := a.Stat(context.Background(), "link")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if meta.Kind != domain.PathKindSymlink {
		t.Errorf("Kind = %v, want symlink", meta.Kind)
	}
}

func TestAdapter_StatErrors(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	if _, err := a.Stat(ctx, "missing.txt"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := a.Stat(ctx, "../outside"); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := a.Stat(cancelled, "missing.txt"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAdapter_List(t *testing.T) {
	a, root := newTestAdapter(t)

	testutil.CreateTestFile(t, root, "private/foo/bar.img", []byte("image"))
	testutil.CreateTestFile(t, root, "private/notes.txt", []byte("notes"))

	items, err := a.List(context.Background(), "/private")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Path != "/private/foo" || items[0].Meta.Kind != domain.PathKindFolder {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Path != "/private/notes.txt" || items[1].Meta.Size != 5 {
		t.Errorf("unexpected second item: %+v", items[1])
	}
	if items[1].Name() != "notes.txt" {
		t.Errorf("Name() = %q, want notes.txt", items[1].Name())
	}

	rootItems, err := a.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List(root) error = %v", err)
	}
	if len(rootItems) != 1 || rootItems[0].Path != "/private" {
		t.Errorf("unexpected root listing: %+v", rootItems)
	}
}

func TestAdapter_ListErrors(t *testing.T) {
	a, root := newTestAdapter(t)
	testutil.CreateTestFile(t, root, "file.txt", []byte("x"))

	if _, err := a.List(context.Background(), "file.txt"); !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("expected ErrNotDirectory, got %v", err)
	}
	if _, err := a.List(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.List(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	a, root := newTestAdapter(t)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", root, false},
		{"/", root, false},
		{"a/b.txt", filepath.Join(root, "a", "b.txt"), false},
		{"/a/../b.txt", filepath.Join(root, "b.txt"), false},
		{"..", "", true},
		{"../sibling", "", true},
		{"a/../../x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := a.resolvePath(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrPermissionDenied) {
					t.Errorf("resolvePath(%q) error = %v, want ErrPermissionDenied", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePath(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("resolvePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupOwner_FallsBackToUID(t *testing.T) {
	root := t.TempDir()
	file := testutil.CreateTestFile(t, root, "x", []byte("x"))
	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}

	orig := LookupUserID
	defer func() { LookupUserID = orig }()

	LookupUserID = func(uid string) (*user.User, error) {
		return &user.User{Uid: uid, Username: "alice"}, nil
	}
	if got := LookupOwner(info); got != "" && got != "alice" {
		t.Errorf("LookupOwner() = %q, want alice", got)
	}

	LookupUserID = func(uid string) (*user.User, error) {
		return nil, user.UnknownUserIdError(0)
	}
	if got := LookupOwner(info); got == "alice" {
		t.Errorf("LookupOwner() should not return the stubbed name after lookup failure")
	}
}
