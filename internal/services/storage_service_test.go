// internal/services/storage_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/grocery-backend/internal/config"
)

func localStorage(t *testing.T) *StorageService {
	t.Helper()
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)
	return svc
}

func TestGetDefaultUploadOptions(t *testing.T) {
	svc := localStorage(t)

	products := svc.GetDefaultUploadOptions("products")
	assert.Equal(t, "products", products.Folder)
	assert.True(t, products.IsPublic)
	assert.Contains(t, products.AllowedTypes, ".webp")

	banners := svc.GetDefaultUploadOptions("banners")
	assert.Equal(t, "banners", banners.Folder)

	other := svc.GetDefaultUploadOptions("something-else")
	assert.Equal(t, "general", other.Folder)
	assert.False(t, other.IsPublic)
}

func TestGenerateFileNameKeepsExtensionAndFolder(t *testing.T) {
	svc := localStorage(t)

	name := svc.generateFileName("avocado.png", "products")
	assert.True(t, strings.HasPrefix(name, "products/"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	// Unique per call
	assert.NotEqual(t, name, svc.generateFileName("avocado.png", "products"))
}

func TestGetS3URL(t *testing.T) {
	cfg := &config.Config{}
	cfg.AWS.S3Bucket = "grocery-admin-assets"
	cfg.AWS.Region = "us-east-1"
	svc := &StorageService{config: cfg}

	assert.Equal(t,
		"https://grocery-admin-assets.s3.us-east-1.amazonaws.com/products/a.png",
		svc.getS3URL("products/a.png"))

	cfg.AWS.CloudFrontURL = "https://cdn.freshcart.local"
	assert.Equal(t, "https://cdn.freshcart.local/products/a.png", svc.getS3URL("products/a.png"))
}

func TestIsValidImageType(t *testing.T) {
	svc := localStorage(t)

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif := []byte("GIF89a......")
	webp := []byte("RIFF1234WEBP")
	text := []byte("definitely not an image header padding")

	assert.True(t, svc.isValidImageType(jpeg))
	assert.True(t, svc.isValidImageType(png))
	assert.True(t, svc.isValidImageType(gif))
	assert.True(t, svc.isValidImageType(webp))
	assert.False(t, svc.isValidImageType(text))
}
