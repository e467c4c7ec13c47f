package dto

import (
	"github.com/gen-relay/genlayer-relay/internal/httputil"
	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

// SignResponse is returned by POST /sign.
type SignResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// MapSignedMessageToResponse converts a signed message into its response shape.
func MapSignedMessageToResponse(signed *signingDomain.SignedMessage) SignResponse {
	return SignResponse{
		Status:    httputil.StatusOK,
		Message:   signed.Message,
		Signature: signed.Signature.String(),
	}
}

// VerifyResponse is returned by POST /verify.
type VerifyResponse struct {
	Status  string `json:"status"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// MapVerificationToResponse converts a verification result into its response shape.
func MapVerificationToResponse(verification *signingDomain.Verification) VerifyResponse {
	return VerifyResponse{
		Status:  httputil.StatusOK,
		Valid:   verification.Valid,
		Message: verification.Message,
	}
}
