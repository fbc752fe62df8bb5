// internal/middleware/logging_test.go
package middleware

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScrubCredentials(t *testing.T) {
	data := map[string]interface{}{
		"username":      "shopper",
		"password":      "hunter2!A",
		"new_password":  "hunter3!A",
		"token":         "abc123",
		"refresh_token": "def456",
		"access_token":  "ghi789",
		"delta":         3,
	}

	scrubCredentials(data)

	assert.Equal(t, map[string]interface{}{
		"username": "shopper",
		"delta":    3,
	}, data)
}

func TestScrubCredentialsNilMap(t *testing.T) {
	assert.NotPanics(t, func() {
		scrubCredentials(nil)
	})
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, "products", extractResourceType("/api/products"))
	assert.Equal(t, "auth", extractResourceType("/api/auth/reset-password"))
	assert.Equal(t, "health", extractResourceType("/health"))
}

func TestExtractResourceID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id.String(), extractResourceID("/api/products/"+id.String()))
	assert.Empty(t, extractResourceID("/api/products"))
}
