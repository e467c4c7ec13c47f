package domain

import (
	"encoding/hex"
)

// Tag is a message authentication code derived from a Secret and a Message.
// On the wire it is carried as lowercase hexadecimal.
type Tag []byte

// ParseTag decodes a hex-encoded tag. Both lowercase and uppercase digits are
// accepted. An empty string returns ErrSignatureMissing.
func ParseTag(value string) (Tag, error) {
	if value == "" {
		return nil, ErrSignatureMissing
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, ErrSignatureMalformed
	}
	return Tag(b), nil
}

// String returns the lowercase hex encoding of the tag.
func (t Tag) String() string {
	return hex.EncodeToString(t)
}
