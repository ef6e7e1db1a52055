package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      string
		expectedError bool
	}{
		{
			name:     "without prefix",
			input:    "moviechannel",
			expected: "@moviechannel",
		},
		{
			name:     "with prefix",
			input:    "@moviechannel",
			expected: "@moviechannel",
		},
		{
			name:     "surrounding whitespace",
			input:    "  req1 \n",
			expected: "@req1",
		},
		{
			name:     "https link",
			input:    "https://t.me/kino_uz",
			expected: "@kino_uz",
		},
		{
			name:     "short link with trailing slash",
			input:    "t.me/kino_uz/",
			expected: "@kino_uz",
		},
		{
			name:          "empty",
			input:         "   ",
			expectedError: true,
		},
		{
			name:          "only prefix",
			input:         "@",
			expectedError: true,
		},
		{
			name:          "contains space",
			input:         "movie channel",
			expectedError: true,
		},
		{
			name:          "double prefix",
			input:         "@@movies",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeHandle(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestNormalizeHandle_Idempotent(t *testing.T) {
	for _, input := range []string{"movies", "@movies", "https://t.me/movies"} {
		first, err := NormalizeHandle(input)
		assert.NoError(t, err)

		second, err := NormalizeHandle(first)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestChannel_URL(t *testing.T) {
	assert.Equal(t, "https://t.me/moviechannel", Channel{Handle: "@moviechannel"}.URL())
}
