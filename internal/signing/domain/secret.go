package domain

import (
	"log/slog"
)

const redacted = "[REDACTED]"

// Secret is the process-wide signing key.
//
// A Secret is created once at startup and never mutated. It redacts itself in
// every formatting path (fmt verbs, slog attributes, JSON) so that passing it
// to a logger or an encoder by mistake cannot leak key material.
type Secret struct {
	key []byte
}

// NewSecret copies key into a new Secret. Later changes to key do not affect
// the returned value.
func NewSecret(key []byte) Secret {
	if len(key) == 0 {
		return Secret{}
	}
	cp := make([]byte, len(key))
	copy(cp, key)
	return Secret{key: cp}
}

// IsEmpty reports whether the secret holds no key material.
func (s Secret) IsEmpty() bool {
	return len(s.key) == 0
}

// Len returns the key length in bytes.
func (s Secret) Len() int {
	return len(s.key)
}

// Bytes returns the key material. Callers must not modify or retain it.
func (s Secret) Bytes() []byte {
	return s.key
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not print the key.
func (s Secret) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}
