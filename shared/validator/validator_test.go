package validator_test

import (
	"strings"
	"testing"

	"campusvisit/shared/validator"

	"github.com/stretchr/testify/assert"
)

type resetForm struct {
	Password string `form:"password"         validate:"required,min=6"`
	Confirm  string `form:"confirm_password" validate:"eqfield=Password"`
}

type staffForm struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,role"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    *resetForm
		wantMsg string
	}{
		{name: "valid", data: &resetForm{Password: "secret1", Confirm: "secret1"}},
		{name: "too short", data: &resetForm{Password: "abc", Confirm: "abc"}, wantMsg: "password must be at least 6 characters"},
		{name: "mismatch", data: &resetForm{Password: "secret1", Confirm: "secret2"}, wantMsg: "Passwords do not match."},
		{name: "missing", data: &resetForm{}, wantMsg: "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "six digit otp", field: "123456", tag: "otp"},
		{name: "five digit otp", field: "12345", tag: "otp", expectError: true},
		{name: "seven digit otp", field: "1234567", tag: "otp", expectError: true},
		{name: "letters in otp", field: "12a456", tag: "otp", expectError: true},
		{name: "guide role", field: "guide", tag: "role"},
		{name: "unknown role", field: "superadmin", tag: "role", expectError: true},
		{name: "valid email", field: "visitor@school.edu", tag: "email"},
		{name: "invalid email", field: "visitor@", tag: "email", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"name":"Ayla","email":"ayla@example.com","role":"guide"}`},
		{name: "bad role", jsonBody: `{"name":"Ayla","email":"ayla@example.com","role":"root"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"name":`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data staffForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
