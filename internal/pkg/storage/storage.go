package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for file storage backends.
// Intentionally simple: Save a file, Delete a file, get its URL.
type Storage interface {
	// Save stores a file at the given path and returns an error on failure.
	Save(ctx context.Context, filePath string, reader io.Reader, contentType string) error

	// Delete removes a file by its path. Returns nil if file doesn't exist.
	Delete(ctx context.Context, filePath string) error

	// GetURL returns the public URL for a file given its logical path.
	GetURL(filePath string) string
}

// Config holds S3-compatible storage configuration
type Config struct {
	Endpoint  string // custom endpoint for MinIO / R2, empty for AWS
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // CDN URL for public access, optional
}

// AllowedMimeTypes maps upload categories to permitted MIME types
var AllowedMimeTypes = map[string][]string{
	"vehicle_image": {"image/jpeg", "image/png"},
}

// MaxVehicleImageSize caps a single gallery upload at 10 MB
const MaxVehicleImageSize = 10 << 20
