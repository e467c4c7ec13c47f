package domain

// Randomness is a round of publicly verifiable randomness from a drand beacon.
type Randomness struct {
	Round      uint64
	Randomness string // Hex-encoded
	Signature  string // Hex-encoded
}
