package storage

import (
	"context"
	"io"
)

// StorageReport is what a completed upload yields: the public URL the
// stored image is reachable at.
type StorageReport struct {
	ImageURL string `json:"imageUrl"`
}

// FileRepository stores uploaded images. Storage must succeed before
// the owning post is ever persisted.
type FileRepository interface {
	StoreImage(ctx context.Context, image io.Reader) (StorageReport, error)
}
