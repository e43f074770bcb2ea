// Package storage provides the local-disk implementation of file storage
// for uploaded media.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/domain/service"
)

// localStorage writes uploads under a base directory that the HTTP server
// serves statically at publicPath.
type localStorage struct {
	dir        string
	publicPath string
	now        func() time.Time
}

// NewLocalStorage is the constructor for localStorage.
func NewLocalStorage(cfg *config.Config) (service.FileStorage, error) {
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	return &localStorage{
		dir:        cfg.Uploads.Dir,
		publicPath: cfg.Uploads.PublicPath,
		now:        time.Now,
	}, nil
}

// Save stores the content under a timestamp-prefixed name so repeated
// uploads of the same filename never collide, and returns the public URL.
func (s *localStorage) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + sanitizeFilename(filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}

	return path.Join(s.publicPath, name), nil
}

// sanitizeFilename strips directory components and characters that have no
// business in a served filename.
func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")

	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "upload"
	}

	return b.String()
}
