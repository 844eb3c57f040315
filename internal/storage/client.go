// Package storage abstracts the media store behind a small interface so
// services and tests never touch the FTP wire protocol directly.
package storage

import (
	"context"
	"io"
)

// Client stores and removes uploaded media files
type Client interface {
	Upload(ctx context.Context, remotePath string, data io.Reader) error
	Delete(ctx context.Context, remotePath string) error
	List(ctx context.Context, dir string) ([]string, error)
}
