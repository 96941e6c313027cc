package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryFileRepository uploads post images to Cloudinary and hands
// back the served URL.
type CloudinaryFileRepository struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryFileRepository builds a repository from a
// CLOUDINARY_URL-style connection string.
func NewCloudinaryFileRepository(cloudinaryURL string) (*CloudinaryFileRepository, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryFileRepository{client: client, folder: "gram/posts"}, nil
}

func (r *CloudinaryFileRepository) StoreImage(ctx context.Context, image io.Reader) (StorageReport, error) {
	uploadParams := uploader.UploadParams{
		Folder:         r.folder,
		PublicID:       uuid.NewString() + "_" + time.Now().Format("20060102150405"),
		Transformation: "c_limit,w_1080,h_1080,q_auto",
	}

	result, err := r.client.Upload.Upload(ctx, image, uploadParams)
	if err != nil {
		return StorageReport{}, fmt.Errorf("upload image: %w", err)
	}
	return StorageReport{ImageURL: result.SecureURL}, nil
}
