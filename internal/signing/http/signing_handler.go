// Package http provides HTTP handlers for message signing and signature verification.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gen-relay/genlayer-relay/internal/httputil"
	"github.com/gen-relay/genlayer-relay/internal/signing/http/dto"
	signingUseCase "github.com/gen-relay/genlayer-relay/internal/signing/usecase"
	customValidation "github.com/gen-relay/genlayer-relay/internal/validation"
)

// SigningHandler handles HTTP requests for the sign and verify endpoints.
type SigningHandler struct {
	signingUseCase signingUseCase.SigningUseCase
	logger         *slog.Logger
}

// NewSigningHandler creates a new signing handler with required dependencies.
func NewSigningHandler(signingUseCase signingUseCase.SigningUseCase, logger *slog.Logger) *SigningHandler {
	return &SigningHandler{
		signingUseCase: signingUseCase,
		logger:         logger,
	}
}

// SignHandler signs the submitted message with the server secret.
// POST /sign - Returns 200 OK with the hex signature.
// Any client-supplied secret in the body is ignored. A missing secret is
// reported before any request error.
func (h *SigningHandler) SignHandler(c *gin.Context) {
	if err := h.signingUseCase.CheckSecret(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	signed, err := h.signingUseCase.Sign(c.Request.Context(), req.Message)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSignedMessageToResponse(signed))
}

// VerifyHandler checks a claimed signature against the submitted message.
// POST /verify - Returns 200 OK with valid=true|false. A mismatch is not an error.
func (h *SigningHandler) VerifyHandler(c *gin.Context) {
	if err := h.signingUseCase.CheckSecret(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	verification, err := h.signingUseCase.Verify(c.Request.Context(), req.Message, req.Signature)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVerificationToResponse(verification))
}
