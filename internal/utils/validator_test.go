// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registrationInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
}

func TestValidateStruct(t *testing.T) {
	valid := registrationInput{
		Username: "fresh_admin",
		Email:    "admin@freshcart.local",
		Password: "Fresh!Cart123",
	}
	assert.NoError(t, ValidateStruct(&valid))
}

func TestStrongPasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all character classes", "Fresh!Cart123", true},
		{"too short", "Fc1!", false},
		{"no uppercase", "fresh!cart123", false},
		{"no lowercase", "FRESH!CART123", false},
		{"no number", "Fresh!CartABC", false},
		{"no special", "FreshCart1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := registrationInput{
				Username: "fresh_admin",
				Email:    "admin@freshcart.local",
				Password: tt.password,
			}
			err := ValidateStruct(&input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUsernameRule(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"alphanumeric", "admin42", true},
		{"with underscore", "fresh_admin", true},
		{"too short", "ab", false},
		{"spaces", "fresh admin", false},
		{"punctuation", "fresh-admin!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := registrationInput{
				Username: tt.username,
				Email:    "admin@freshcart.local",
				Password: "Fresh!Cart123",
			}
			err := ValidateStruct(&input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	input := registrationInput{Username: "ok_user", Email: "not-an-email", Password: "Fresh!Cart123"}

	errs := GetValidationErrors(ValidateStruct(&input))
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Invalid email format", errs[0].Message)
}

func TestGetValidationErrorsNil(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
