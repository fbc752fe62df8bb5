// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := &User{Username: "shopper", Email: "shopper@example.com"}

	require.NoError(t, user.SetPassword("Fresh!Cart123"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Fresh!Cart123", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("Fresh!Cart123"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}

func TestUserPasswordHashUnique(t *testing.T) {
	a := &User{}
	b := &User{}

	require.NoError(t, a.SetPassword("Fresh!Cart123"))
	require.NoError(t, b.SetPassword("Fresh!Cart123"))

	// bcrypt salts every hash
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
}
