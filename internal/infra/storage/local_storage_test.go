package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Ulrich-Yao/website/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Uploads.Dir = dir
	cfg.Uploads.PublicPath = "/uploads"

	store, err := NewLocalStorage(cfg)
	require.NoError(t, err)

	fixed := time.UnixMilli(1700000000000)
	store.(*localStorage).now = func() time.Time { return fixed }

	url, err := store.Save(context.Background(), "banner.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-banner.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000-banner.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestLocalStorage_SaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Uploads.Dir = dir
	cfg.Uploads.PublicPath = "/uploads"

	store, err := NewLocalStorage(cfg)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, url, "..")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-passwd"))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my_photo.png"},
		{"été-à-paris.jpg", "t--paris.jpg"},
		{"///", "upload"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}
