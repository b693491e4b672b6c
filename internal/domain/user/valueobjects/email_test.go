package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid email", "user@example.com", "user@example.com", false},
		{"normalizes case and whitespace", "  User@Example.COM ", "user@example.com", false},
		{"empty", "", "", true},
		{"missing at sign", "userexample.com", "", true},
		{"missing tld", "user@example", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestEmail_Domain(t *testing.T) {
	email, err := NewEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "x.com", email.Domain())
}
