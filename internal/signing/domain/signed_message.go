package domain

// SignedMessage is the result of signing a message.
type SignedMessage struct {
	Message   string
	Signature Tag
	Algorithm Algorithm
}

// Verification is the result of checking a claimed signature.
// Valid is false for a well-formed signature that does not match.
type Verification struct {
	Message string
	Valid   bool
}
