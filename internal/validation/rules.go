// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/gen-relay/genlayer-relay/internal/errors"
)

var (
	// identifierListRegex matches a comma separated list of lowercase API identifiers
	// such as "bitcoin,ethereum" or "usd,eur".
	identifierListRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*(,[a-z0-9][a-z0-9_-]*)*$`)

	// cityRegex allows letters in any script, spaces, dots, apostrophes, hyphens and
	// an optional ",CC" country suffix as accepted by OpenWeather.
	cityRegex = regexp.MustCompile(`^[\p{L}\p{M}][\p{L}\p{M} .'\-]*(,\s*[A-Za-z]{2})?$`)
)

// WrapValidationError converts a validation error into a domain ErrInvalidInput whose
// message is the validation text.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Define(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) == s
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// IdentifierList validates a comma separated list of lowercase identifiers.
var IdentifierList = validation.NewStringRuleWithError(
	identifierListRegex.MatchString,
	validation.NewError("validation_identifier_list", "must be a comma separated list of lowercase identifiers"),
)

// City validates a city name, optionally followed by a two letter country code.
var City = validation.NewStringRuleWithError(
	cityRegex.MatchString,
	validation.NewError("validation_city", "must be a valid city name"),
)
