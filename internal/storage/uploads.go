package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// ErrFileTooLarge is returned when an upload exceeds the size cap.
var ErrFileTooLarge = errors.New("file exceeds the size limit")

// ErrBadExtension is returned for file types we do not accept.
var ErrBadExtension = errors.New("file type not allowed")

// Uploader stores multipart files on local disk and optionally mirrors
// them to R2 in the background.
type Uploader struct {
	Dir      string
	MaxBytes int64
	Mirror   *R2Mirror // nil when R2 is not configured
}

func NewUploader(dir string, maxSizeMB int, mirror *R2Mirror) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Uploader{
		Dir:      dir,
		MaxBytes: int64(maxSizeMB) * 1024 * 1024,
		Mirror:   mirror,
	}, nil
}

// Save validates and writes an uploaded file, returning the stored
// filename: {field}-{timestamp}-{random}{ext}.
func (u *Uploader) Save(field string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > u.MaxBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrBadExtension
	}

	suffix := make([]byte, 4)
	rand.Read(suffix)
	filename := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), hex.EncodeToString(suffix), ext)

	dst, err := os.Create(filepath.Join(u.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	defer dst.Close()

	// LimitReader guards against a lying Content-Length
	written, err := io.Copy(dst, io.LimitReader(file, u.MaxBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	if written > u.MaxBytes {
		os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	if u.Mirror != nil {
		go u.Mirror.Upload(filename, filepath.Join(u.Dir, filename))
	}
	return filename, nil
}
