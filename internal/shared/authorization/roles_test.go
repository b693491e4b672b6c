package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		input    string
		expected UserRole
	}{
		{"staff", RoleStaff},
		{"customer", RoleCustomer},
		{"", RoleCustomer},
		{"admin", RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseUserRole(tt.input))
		})
	}
}
