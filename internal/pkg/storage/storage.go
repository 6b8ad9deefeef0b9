package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where notice attachments live so handlers do
// not care whether files sit on local disk or object storage.
type FileStorage interface {
	// Upload stores a file and returns the path/key it was stored under.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL returns a URL the file can be fetched from.
	GetURL(ctx context.Context, path string) (string, error)
}
