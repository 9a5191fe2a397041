package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
)

// Subfolders used by the upload flows.
const (
	FolderProfiles     = "profiles"
	FolderResumes      = "resumes"
	FolderTestimonials = "testimonials"
	FolderServices     = "services"
)

// MaxImageWidth is the widest jpg/png kept as uploaded; wider images are scaled down.
const MaxImageWidth = 1600

var (
	imageTypes = map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
	}
	documentTypes = map[string]string{
		".pdf":  "application/pdf",
		".doc":  "application/msword",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

type FileService interface {
	// UploadImage stores a jpg, jpeg, png, gif or webp file and returns its public URL.
	UploadImage(ctx context.Context, subfolder string, upload storage.Upload) (string, error)

	// UploadDocument stores a pdf, doc or docx file and returns its public URL.
	UploadDocument(ctx context.Context, subfolder string, upload storage.Upload) (string, error)

	// Delete removes a previously uploaded file by URL. Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error

	// DeleteQuietly is Delete with failures logged instead of returned.
	DeleteQuietly(ctx context.Context, url string)
}

type fileServiceImpl struct {
	storage storage.FileStorage
	now     func() time.Time
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
		now:     time.Now,
	}
}

func (s *fileServiceImpl) key(subfolder, ext string) string {
	return fmt.Sprintf("%s/%s-%d-%s%s", subfolder, subfolder, s.now().Unix(), uuid.New().String(), ext)
}

func checkSize(upload storage.Upload) error {
	if upload.File == nil {
		return storage.ErrFileRequired
	}
	if upload.Size > storage.MaxUploadSize {
		return storage.ErrFileTooLarge
	}
	return nil
}

// UploadImage implements FileService.
func (s *fileServiceImpl) UploadImage(ctx context.Context, subfolder string, upload storage.Upload) (string, error) {
	if err := checkSize(upload); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: only jpg, jpeg, png, gif, webp images are allowed", storage.ErrUnsupportedFileType)
	}

	body := upload.File
	if ext != ".gif" && ext != ".webp" {
		buffer, err := io.ReadAll(io.LimitReader(upload.File, storage.MaxUploadSize+1))
		if err != nil {
			return "", fmt.Errorf("failed to read image: %w", err)
		}
		if len(buffer) > storage.MaxUploadSize {
			return "", storage.ErrFileTooLarge
		}

		processed, err := downscale(buffer, ext)
		if err != nil {
			return "", fmt.Errorf("failed to process image: %w", err)
		}
		body = bytes.NewReader(processed)
	}

	key, err := s.storage.Upload(ctx, body, s.key(subfolder, ext), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return s.storage.URL(key), nil
}

// UploadDocument implements FileService.
func (s *fileServiceImpl) UploadDocument(ctx context.Context, subfolder string, upload storage.Upload) (string, error) {
	if err := checkSize(upload); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, ok := documentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: only pdf, doc, docx documents are allowed", storage.ErrUnsupportedFileType)
	}

	key, err := s.storage.Upload(ctx, io.LimitReader(upload.File, storage.MaxUploadSize), s.key(subfolder, ext), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}
	return s.storage.URL(key), nil
}

// Delete implements FileService.
func (s *fileServiceImpl) Delete(ctx context.Context, url string) error {
	key, ok := s.storage.KeyFor(url)
	if !ok {
		return nil
	}
	return s.storage.Delete(ctx, key)
}

// DeleteQuietly implements FileService.
func (s *fileServiceImpl) DeleteQuietly(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.Delete(ctx, url); err != nil {
		slog.Error("Failed to delete uploaded file", "url", url, "error", err)
	}
}

// ==================== HELPER FUNCTIONS ====================

// downscale narrows jpg and png images wider than MaxImageWidth, keeping the
// aspect ratio and the original format. Smaller images are returned untouched.
func downscale(buffer []byte, ext string) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width <= MaxImageWidth {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	height := cfg.Height * MaxImageWidth / cfg.Width
	if height < 1 {
		height = 1
	}
	resized := resizeImage(img, MaxImageWidth, height)

	buf := new(bytes.Buffer)
	if ext == ".png" {
		err = png.Encode(buf, resized)
	} else {
		err = jpeg.Encode(buf, resized, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
