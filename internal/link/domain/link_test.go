package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		pushID   string
		audience string
		expected string
	}{
		{
			name:     "without audience",
			host:     DefaultHost,
			pushID:   "abc123",
			expected: "https://vdo.ninja/?push=abc123",
		},
		{
			name:     "with audience",
			host:     DefaultHost,
			pushID:   "Ab3dE5gH",
			audience: "Valid1Pass!",
			expected: "https://vdo.ninja/?push=Ab3dE5gH&audience=Valid1Pass!",
		},
		{
			name:     "custom host",
			host:     "vdo.example.org",
			pushID:   "room",
			expected: "https://vdo.example.org/?push=room",
		},
		{
			name:     "special characters are not escaped",
			host:     DefaultHost,
			pushID:   "room",
			audience: "a#b&c%D1",
			expected: "https://vdo.ninja/?push=room&audience=a#b&c%D1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildURL(tt.host, tt.pushID, tt.audience))
		})
	}
}

func TestRecord_JSONName(t *testing.T) {
	data, err := json.Marshal(Record{EncryptedURL: "Y2lwaGVy"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vdo_ninja_url":"Y2lwaGVy"}`, string(data))
}
