package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Validation failures surfaced to the client as bad requests.
var (
	ErrNotImage     = errors.New("uploaded file must be an image")
	ErrFileTooLarge = errors.New("uploaded file exceeds the maximum allowed size")
)

// StagedUpload is a temporary on-disk copy of an uploaded file, scoped to a
// single request.
type StagedUpload struct {
	FilePath  string
	MimeType  string
	SizeBytes int64
}

// UploadService stages uploaded images on disk for the duration of a request.
// Files get unique names, so concurrent uploads never collide.
type UploadService struct {
	dir      string
	maxBytes int64
}

// NewUploadService creates a new UploadService, creating the staging
// directory if needed.
func NewUploadService(dir string, maxBytes int64) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{dir: dir, maxBytes: maxBytes}, nil
}

// Stage validates an uploaded file and writes it to the staging directory.
// Validation happens before anything touches disk.
func (s *UploadService) Stage(file *multipart.FileHeader) (*StagedUpload, error) {
	mimeType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrNotImage
	}
	if file.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, uuid.New().String()+filepath.Ext(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	return &StagedUpload{
		FilePath:  path,
		MimeType:  mimeType,
		SizeBytes: written,
	}, nil
}

// Remove deletes a staged file. Cleanup is best-effort: failures are logged
// and never propagated to the caller.
func (s *UploadService) Remove(upload *StagedUpload) {
	if upload == nil {
		return
	}
	if err := os.Remove(upload.FilePath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove staged file %s: %v", upload.FilePath, err)
	}
}
