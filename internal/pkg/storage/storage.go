package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded files live. The HTTP layer only
// ever sees paths/keys; URL generation is the storage's concern.
type FileStorage interface {
	// Upload stores a file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a previously uploaded file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL returns a URL a browser can fetch the file from.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists reports whether a file is present.
	Exists(ctx context.Context, path string) (bool, error)
}

// Upload constraints for the profile picture endpoint.
const (
	MaxProfilePictureSize = 5 << 20 // 5 MiB
)

var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
