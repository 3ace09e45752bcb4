package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{
			name:     "Zero",
			cents:    0,
			expected: "$0.00",
		},
		{
			name:     "Sub-dollar amount",
			cents:    50,
			expected: "$0.50",
		},
		{
			name:     "One dollar",
			cents:    100,
			expected: "$1.00",
		},
		{
			name:     "Grouped thousands",
			cents:    150000,
			expected: "$1,500.00",
		},
		{
			name:     "Millions",
			cents:    123456789,
			expected: "$1,234,567.89",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.cents))
		})
	}
}

func TestFormatPtr(t *testing.T) {
	assert.Equal(t, "$0.00", FormatPtr(nil))

	cents := int64(4200)
	assert.Equal(t, "$42.00", FormatPtr(&cents))
}
