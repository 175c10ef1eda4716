package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "jane@example.com", false},
		{"valid with plus", "jane+crm@example.co.uk", false},
		{"empty", "", true},
		{"no at", "jane.example.com", true},
		{"no domain dot", "jane@example", true},
		{"spaces", "jane doe@example.com", true},
		{"two ats", "jane@@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"ten digits", "1111111111", false},
		{"with plus", "+4915112345678", false},
		{"empty", "", true},
		{"too short", "12345", true},
		{"too long", "1234567890123456", true},
		{"letters", "phone12345", true},
		{"dashes", "111-111-1111", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("first_name", "Jane"))

	err := ValidateName("first_name", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "first_name")

	assert.Error(t, ValidateName("last_name", strings.Repeat("x", MaxNameLen+1)))
}
