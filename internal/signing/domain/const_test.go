package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gen-relay/genlayer-relay/internal/errors"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Algorithm
		wantErr  bool
	}{
		{name: "sha256", input: "hmac-sha256", expected: HMACSHA256},
		{name: "sha512", input: "hmac-sha512", expected: HMACSHA512},
		{name: "sha3-256", input: "hmac-sha3-256", expected: HMACSHA3256},
		{name: "uppercase with spaces", input: "  HMAC-SHA256 ", expected: HMACSHA256},
		{name: "unknown", input: "md5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
				assert.ErrorIs(t, err, apperrors.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}
}

func TestAlgorithm_TagSize(t *testing.T) {
	assert.Equal(t, 32, HMACSHA256.TagSize())
	assert.Equal(t, 64, HMACSHA512.TagSize())
	assert.Equal(t, 32, HMACSHA3256.TagSize())
}
