package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// AssetStorage defines contract for badge artwork storage (Cloudinary implementation).
type AssetStorage interface {
	// UploadAsset uploads a rendered asset from reader and returns the secure URL.
	// folder is the logical folder in storage (e.g. "fomoscore_badges").
	// Re-uploading the same fileName overwrites the previous version, so a
	// badge keeps one stable URL per user.
	UploadAsset(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeleteAsset deletes an asset from storage using its URL.
	DeleteAsset(ctx context.Context, fileURL string) error
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates Cloudinary-backed implementation of AssetStorage.
// It expects CLOUDINARY_URL or individual CLOUDINARY_CLOUD_NAME / CLOUDINARY_API_KEY / CLOUDINARY_API_SECRET
// to be configured in environment variables (see Cloudinary Go SDK docs).
func NewCloudinaryStorage() (AssetStorage, error) {
	// cloudinary.New() automatically reads CLOUDINARY_URL from environment if present.
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	// Ensure HTTPS URLs by default.
	cld.Config.URL.Secure = true

	// Optional: allow overriding cloud name via env if needed.
	if cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME"); cloudName != "" {
		cld.Config.Cloud.CloudName = cloudName
	}

	return &cloudinaryStorage{cld: cld}, nil
}

// UploadAsset uploads an asset to Cloudinary and returns the secure URL.
func (s *cloudinaryStorage) UploadAsset(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	if s == nil || s.cld == nil {
		return "", fmt.Errorf("cloudinary storage is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	publicID := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	params := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(false),
		PublicID:       publicID,
		Overwrite:      api.Bool(true),
	}

	resp, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload asset to cloudinary: %w", err)
	}

	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload succeeded but secure URL is empty")
	}

	return resp.SecureURL, nil
}

// DeleteAsset deletes an asset from Cloudinary.
func (s *cloudinaryStorage) DeleteAsset(ctx context.Context, fileURL string) error {
	if s == nil || s.cld == nil {
		return fmt.Errorf("cloudinary storage is not initialized")
	}

	publicID := s.extractPublicID(fileURL)
	if publicID == "" {
		return fmt.Errorf("could not extract public ID from URL: %s", fileURL)
	}

	// Invalidate: true helps to clear CDN cache
	params := uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	}

	resp, err := s.cld.Upload.Destroy(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to delete asset from cloudinary: %w", err)
	}

	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy api returned result: %s", resp.Result)
	}

	return nil
}

// extractPublicID attempts to extract the public ID from a Cloudinary URL.
// Example: https://res.cloudinary.com/demo/image/upload/v123456789/folder/sample.svg -> folder/sample
func (s *cloudinaryStorage) extractPublicID(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}

	path := u.Path
	// Path is roughly /<cloud_name>/image/upload/v<version>/<folder>/<file>.<ext>
	// or /<cloud_name>/image/upload/<folder>/<file>.<ext>

	// Find the "upload" segment
	parts := strings.Split(path, "/")
	uploadIndex := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIndex = i
			break
		}
	}

	if uploadIndex == -1 || uploadIndex+1 >= len(parts) {
		return ""
	}

	// Everything after "upload" is potential [version/]public_id.ext
	relevantParts := parts[uploadIndex+1:]

	// Check if the first part is a version (starts with 'v' and is numeric)
	// Cloudinary versions start with 'v' followed by numbers.
	if len(relevantParts) > 0 && strings.HasPrefix(relevantParts[0], "v") {
		// weak check, but okay for cloudinary
		relevantParts = relevantParts[1:] // skip version
	}

	if len(relevantParts) == 0 {
		return ""
	}

	// Join the rest back to get folder/filename.ext
	publicIDWithExt := strings.Join(relevantParts, "/")

	// Strip extension
	ext := filepath.Ext(publicIDWithExt)
	return strings.TrimSuffix(publicIDWithExt, ext)
}
