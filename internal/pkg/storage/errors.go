package storage

import "errors"

// MaxUploadSize caps every multipart file.
const MaxUploadSize = 5 << 20

var (
	ErrFileTooLarge        = errors.New("file is too large, the limit is 5MB")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileRequired        = errors.New("file is required")
)
