package cloudinary

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

//go:generate mockgen -source=cloudinary_service.go -destination=../mock/cloudinary/cloudinary_service_mock.go -package=mock
type Service interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewService(cloudName, apiKey, apiSecret, folder string) (Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &service{
		cld:    cld,
		folder: folder,
	}, nil
}

// UploadImage stores the image and returns the CDN URL.
func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       filename,
		ResourceType:   "image",
		Transformation: "c_fill,w_400,h_400,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return uploadResult.SecureURL, nil
}

func (s *service) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
