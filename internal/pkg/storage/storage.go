package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores file under key and returns the key actually written.
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)

	// Delete removes a stored object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// URL is the public address of key.
	URL(key string) string

	// KeyFor reverses URL. It reports false for addresses this storage did not issue.
	KeyFor(url string) (string, bool)
}

// Upload is a file received from a multipart form.
type Upload struct {
	File     io.Reader
	Filename string
	Size     int64
}
