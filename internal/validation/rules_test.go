package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/gen-relay/genlayer-relay/internal/errors"
)

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "no whitespace",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "leading whitespace",
			input:     " validstring",
			shouldErr: true,
		},
		{
			name:      "trailing whitespace",
			input:     "validstring ",
			shouldErr: true,
		},
		{
			name:      "internal spaces allowed",
			input:     "valid string",
			shouldErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "only tabs",
			input:     "\t\t",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIdentifierList(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "single identifier", input: "bitcoin", shouldErr: false},
		{name: "multiple identifiers", input: "bitcoin,ethereum,usd-coin", shouldErr: false},
		{name: "underscore allowed", input: "matic_network", shouldErr: false},
		{name: "empty skipped", input: "", shouldErr: false},
		{name: "uppercase rejected", input: "Bitcoin", shouldErr: true},
		{name: "trailing comma", input: "bitcoin,", shouldErr: true},
		{name: "space after comma", input: "bitcoin, ethereum", shouldErr: true},
		{name: "query injection", input: "bitcoin&x=1", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IdentifierList.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "simple", input: "London", shouldErr: false},
		{name: "with spaces", input: "New York", shouldErr: false},
		{name: "with country code", input: "Paris,FR", shouldErr: false},
		{name: "accented", input: "São Paulo", shouldErr: false},
		{name: "apostrophe and hyphen", input: "L'Aquila-Centro", shouldErr: false},
		{name: "digits rejected", input: "London1", shouldErr: true},
		{name: "leading space rejected", input: " London", shouldErr: true},
		{name: "query injection", input: "London&appid=x", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := City.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps validation error as invalid input", func(t *testing.T) {
		result := WrapValidationError(assert.AnError)

		assert.Error(t, result)
		assert.True(t, apperrors.Is(result, apperrors.ErrInvalidInput))
		assert.Equal(t, assert.AnError.Error(), result.Error())
	})
}
