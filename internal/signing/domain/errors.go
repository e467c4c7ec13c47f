package domain

import (
	"github.com/gen-relay/genlayer-relay/internal/errors"
)

// Signing error definitions.
//
// Each error carries a client-safe message and a kind from internal/errors.
// Handlers map the kind to a status code without inspecting message text.
var (
	// ErrSecretMissing indicates the signing secret is absent or empty.
	//
	// HTTP Status: 500 Internal Server Error
	ErrSecretMissing = errors.Define(errors.ErrConfiguration, "secret missing")

	// ErrMessageMissing indicates the message to sign or verify is empty.
	//
	// HTTP Status: 400 Bad Request
	ErrMessageMissing = errors.Define(errors.ErrInvalidInput, "missing message")

	// ErrSignatureMissing indicates a verification request carried no signature.
	//
	// HTTP Status: 400 Bad Request
	ErrSignatureMissing = errors.Define(errors.ErrInvalidInput, "missing signature")

	// ErrSignatureMalformed indicates the claimed signature is not hexadecimal.
	//
	// HTTP Status: 400 Bad Request
	ErrSignatureMalformed = errors.Define(errors.ErrInvalidInput, "signature must be hex encoded")

	// ErrUnsupportedAlgorithm indicates SIGN_ALGORITHM names an unknown construction.
	ErrUnsupportedAlgorithm = errors.Define(errors.ErrConfiguration, "unsupported signing algorithm")

	// ErrSecretDecryption indicates a KMS-wrapped secret could not be decrypted.
	ErrSecretDecryption = errors.Define(errors.ErrConfiguration, "failed to decrypt signing secret")
)
