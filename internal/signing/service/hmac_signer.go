package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"

	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

// HMACService implements MACService with HMAC over a configurable hash.
type HMACService struct {
	alg     signingDomain.Algorithm
	newHash func() hash.Hash
}

// NewHMACService returns an HMACService for alg.
// Returns ErrUnsupportedAlgorithm if alg is unknown.
func NewHMACService(alg signingDomain.Algorithm) (*HMACService, error) {
	var newHash func() hash.Hash
	switch alg {
	case signingDomain.HMACSHA256:
		newHash = sha256.New
	case signingDomain.HMACSHA512:
		newHash = sha512.New
	case signingDomain.HMACSHA3256:
		newHash = sha3.New256
	default:
		return nil, signingDomain.ErrUnsupportedAlgorithm
	}

	return &HMACService{alg: alg, newHash: newHash}, nil
}

// Algorithm returns the construction used to derive tags.
func (s *HMACService) Algorithm() signingDomain.Algorithm {
	return s.alg
}

// Sign computes HMAC(secret, message). The secret is checked before the message.
func (s *HMACService) Sign(message []byte, secret signingDomain.Secret) (signingDomain.Tag, error) {
	if secret.IsEmpty() {
		return nil, signingDomain.ErrSecretMissing
	}
	if len(message) == 0 {
		return nil, signingDomain.ErrMessageMissing
	}

	return s.mac(message, secret), nil
}

// Verify decodes claimedTag from hex, recomputes the expected tag and compares
// the raw bytes with hmac.Equal. Tags of the wrong length compare unequal
// without their content being examined.
func (s *HMACService) Verify(
	message []byte,
	claimedTag string,
	secret signingDomain.Secret,
) (bool, error) {
	if secret.IsEmpty() {
		return false, signingDomain.ErrSecretMissing
	}
	if len(message) == 0 {
		return false, signingDomain.ErrMessageMissing
	}

	claimed, err := signingDomain.ParseTag(claimedTag)
	if err != nil {
		return false, err
	}
	if len(claimed) != s.alg.TagSize() {
		return false, nil
	}

	expected := s.mac(message, secret)

	return hmac.Equal(expected, claimed), nil
}

func (s *HMACService) mac(message []byte, secret signingDomain.Secret) signingDomain.Tag {
	mac := hmac.New(s.newHash, secret.Bytes())
	mac.Write(message)
	return mac.Sum(nil)
}
