package storage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrEmptyFile       = errors.New("file is empty")
)

// ValidateFile validates file size and MIME type for a given category.
// The MIME type is detected from magic bytes, not from the client headers.
func ValidateFile(reader io.Reader, category string, maxSize int64) ([]byte, string, error) {
	// Limited to maxSize + 1 to detect oversized files
	limitedReader := io.LimitReader(reader, maxSize+1)
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}

	if int64(len(data)) > maxSize {
		return nil, "", ErrFileTooLarge
	}

	mimeType := http.DetectContentType(data)
	// "image/jpeg; charset=utf-8" -> "image/jpeg"
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	allowedTypes, ok := AllowedMimeTypes[category]
	if !ok {
		return nil, "", fmt.Errorf("unknown category: %s", category)
	}

	for _, allowed := range allowedTypes {
		if mimeType == allowed {
			return data, mimeType, nil
		}
	}

	return nil, "", ErrInvalidMimeType
}
