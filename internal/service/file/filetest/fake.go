// Package filetest provides an in-memory file.FileService for service tests.
package filetest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
)

// Fake records uploads and deletions. Uploads may be made to fail through Err.
type Fake struct {
	mu      sync.Mutex
	seq     int
	Files   map[string][]byte
	Deleted []string
	Err     error
}

func New() *Fake {
	return &Fake{Files: map[string][]byte{}}
}

func (f *Fake) store(subfolder string, upload storage.Upload) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if upload.File == nil {
		return "", storage.ErrFileRequired
	}
	data, err := io.ReadAll(upload.File)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	url := fmt.Sprintf("/uploads/%s/%s-%d-%s", subfolder, subfolder, f.seq, upload.Filename)
	f.Files[url] = data
	return url, nil
}

func (f *Fake) UploadImage(ctx context.Context, subfolder string, upload storage.Upload) (string, error) {
	return f.store(subfolder, upload)
}

func (f *Fake) UploadDocument(ctx context.Context, subfolder string, upload storage.Upload) (string, error) {
	return f.store(subfolder, upload)
}

func (f *Fake) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, "/uploads/") {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Files, url)
	f.Deleted = append(f.Deleted, url)
	return nil
}

func (f *Fake) DeleteQuietly(ctx context.Context, url string) {
	_ = f.Delete(ctx, url)
}

// Upload builds a storage.Upload from literal content.
func Upload(name, content string) *storage.Upload {
	return &storage.Upload{File: strings.NewReader(content), Filename: name, Size: int64(len(content))}
}
