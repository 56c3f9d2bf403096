package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "Valid card number", number: "4561261212345467", valid: true},
		{name: "Invalid checksum", number: "4561261212345464", valid: false},
		{name: "Not a number", number: "not-a-card", valid: false},
		{name: "Empty", number: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsLuhn(tt.number))
		})
	}
}
