package service

import (
	"context"
	"io"
)

// FileStorage stores uploaded media and returns the public URL it will be
// served from.
type FileStorage interface {
	// Save writes the content under a name derived from filename and
	// returns the public URL of the stored file.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
