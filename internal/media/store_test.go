package media

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/company-site-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newTestStore(t *testing.T, maxSize int64) *Store {
	t.Helper()
	store, err := NewStore(config.MediaConfig{
		UploadDir:   filepath.Join(t.TempDir(), "uploads"),
		MaxFileSize: maxSize,
	}, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func upload(name, contentType string, data []byte) Upload {
	return Upload{Name: name, ContentType: contentType, Size: int64(len(data)), Reader: bytes.NewReader(data)}
}

func TestStore_SaveAndDelete(t *testing.T) {
	store := newTestStore(t, 1024)

	stored, err := store.Save(context.Background(), upload("photo.JPG", "image/jpeg", []byte("jpeg-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored.Path, ".jpg"), "extension is kept lower-cased: %s", stored.Path)
	assert.Equal(t, "photo.JPG", stored.OriginalName)
	assert.Equal(t, int64(10), stored.Size)
	assert.True(t, store.Exists(stored.Path))

	content, err := os.ReadFile(filepath.Join(store.Root(), stored.Path))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	require.NoError(t, store.Delete(stored.Path))
	assert.False(t, store.Exists(stored.Path))
}

func TestStore_DeleteMissingIsNoop(t *testing.T) {
	store := newTestStore(t, 1024)

	assert.NoError(t, store.Delete("1700000000000-doesnotexist.png"))
	assert.NoError(t, store.Delete("1700000000000-doesnotexist.png"))
}

func TestStore_DeleteRejectsTraversal(t *testing.T) {
	store := newTestStore(t, 1024)

	for _, name := range []string{"../secret.png", "a/b.png", "..", ""} {
		assert.ErrorIs(t, store.Delete(name), ErrInvalidName, name)
	}
}

func TestStore_UniqueNames(t *testing.T) {
	store := newTestStore(t, 1024)
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		stored, err := store.Save(context.Background(), upload("same.png", "image/png", pngHeader))
		require.NoError(t, err)
		assert.False(t, seen[stored.Path], "duplicate name %s", stored.Path)
		seen[stored.Path] = true
	}

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestStore_RejectsTypes(t *testing.T) {
	store := newTestStore(t, 1024)

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"disallowed extension", "doc.pdf", "application/pdf"},
		{"image mime with bad extension", "script.php", "image/png"},
		{"good extension with bad mime", "photo.png", "text/html"},
		{"extension and mime disagree", "photo.png", "image/jpeg"},
		{"no extension", "photo", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(context.Background(), upload(tt.filename, tt.contentType, pngHeader))
			assert.ErrorIs(t, err, ErrUnsupportedType)
		})
	}

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not leave files behind")
}

func TestStore_RequiresDeclaredImageType(t *testing.T) {
	store := newTestStore(t, 1024)

	for _, declared := range []string{"application/octet-stream", "", "text/plain"} {
		_, err := store.Save(context.Background(), upload("logo.png", declared, pngHeader))
		assert.ErrorIs(t, err, ErrUnsupportedType, "declared %q", declared)
	}

	stored, err := store.Save(context.Background(), upload("logo.png", "image/png; charset=binary", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/png", stored.ContentType)

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_RejectsContentOfAnotherImageFormat(t *testing.T) {
	store := newTestStore(t, 1024)

	_, err := store.Save(context.Background(), upload("photo.jpg", "image/jpeg", pngHeader))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	gif := []byte("GIF89a\x01\x00\x01\x00")
	_, err = store.Save(context.Background(), upload("anim.gif", "image/gif", gif))
	assert.NoError(t, err)
}

func TestStore_SizeLimit(t *testing.T) {
	store := newTestStore(t, 16)

	_, err := store.Save(context.Background(), upload("big.gif", "image/gif", bytes.Repeat([]byte("a"), 17)))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Declared size may lie; the body is still bounded.
	_, err = store.Save(context.Background(), Upload{
		Name:        "big.gif",
		ContentType: "image/gif",
		Reader:      bytes.NewReader(bytes.Repeat([]byte("a"), 64)),
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = store.Save(context.Background(), upload("ok.gif", "image/gif", bytes.Repeat([]byte("a"), 16)))
	assert.NoError(t, err)
}

func TestStore_NeverOverwrites(t *testing.T) {
	store := newTestStore(t, 1024)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	first, err := store.Save(context.Background(), upload("a.png", "image/png", []byte("first")))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), upload("a.png", "image/png", []byte("second")))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	content, err := os.ReadFile(filepath.Join(store.Root(), first.Path))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}
