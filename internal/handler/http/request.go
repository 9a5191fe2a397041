package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/techdigi/hr-backoffice/internal/domain/auth"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/handler/http/middleware"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// multipartMemory is how much of a multipart body is held in memory before
// spilling to temp files.
const multipartMemory = 10 << 20

// pathID reads a UUID path parameter in canonical form. Malformed values answer
// 400 before any storage call.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		response.HandleError(w, validator.ValidationErrors{{Field: name, Message: "Invalid " + name + " format."}})
		return "", false
	}
	return id.String(), true
}

// decodeJSON reads the body into dst and answers 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error("Request decode error", "path", r.URL.Path, "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 4*storage.MaxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.HandleError(w, storage.ErrFileTooLarge)
			return false
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return false
	}
	return true
}

// formUpload returns the named file or nil when the field is absent.
func formUpload(r *http.Request, field string) (*storage.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return openUpload(r, field, 0)
}

// formUploads returns every file sent under field, in order.
func formUploads(r *http.Request, field string) ([]*storage.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	out := make([]*storage.Upload, 0, len(headers))
	for i := range headers {
		upload, err := openUpload(r, field, i)
		if err != nil {
			return nil, err
		}
		out = append(out, upload)
	}
	return out, nil
}

func openUpload(r *http.Request, field string, index int) (*storage.Upload, error) {
	header := r.MultipartForm.File[field][index]
	if header.Size > storage.MaxUploadSize {
		return nil, storage.ErrFileTooLarge
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	// Closed with the request's multipart form.
	return &storage.Upload{File: file, Filename: header.Filename, Size: header.Size}, nil
}

// optionalFormValue distinguishes an absent field (nil) from an empty one.
func optionalFormValue(r *http.Request, field string) *string {
	if r.MultipartForm != nil {
		if values, ok := r.MultipartForm.Value[field]; ok && len(values) > 0 {
			v := values[0]
			return &v
		}
		return nil
	}
	if values, ok := r.PostForm[field]; ok && len(values) > 0 {
		v := values[0]
		return &v
	}
	return nil
}

// currentUser is the user attached by middleware.AuthRequired.
func currentUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrTokenMissing)
		return user.User{}, false
	}
	return u, true
}

// queryInt parses an optional integer query value.
func queryInt(r *http.Request, key string) (*int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}
