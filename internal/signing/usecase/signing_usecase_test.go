package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "github.com/gen-relay/genlayer-relay/internal/errors"
	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
	signingService "github.com/gen-relay/genlayer-relay/internal/signing/service"
)

const goldenSignature = "d9b5f3e840587b0ea010e1b4c77ed7a8a3bae99ef7bb153ddb7ab31075b8ca80"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestUseCase(t *testing.T, secret string) SigningUseCase {
	t.Helper()
	macService, err := signingService.NewHMACService(signingDomain.HMACSHA256)
	require.NoError(t, err)
	return NewSigningUseCase(macService, signingDomain.NewSecret([]byte(secret)))
}

func TestSigningUseCase_Sign(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GoldenValue", func(t *testing.T) {
		uc := newTestUseCase(t, "s3cr3t")

		signed, err := uc.Sign(ctx, "hello world")
		require.NoError(t, err)
		assert.Equal(t, "hello world", signed.Message)
		assert.Equal(t, goldenSignature, signed.Signature.String())
		assert.Equal(t, signingDomain.HMACSHA256, signed.Algorithm)
	})

	t.Run("Success_RepeatedCallsAreIdentical", func(t *testing.T) {
		uc := newTestUseCase(t, "s3cr3t")

		first, err := uc.Sign(ctx, "hello world")
		require.NoError(t, err)
		second, err := uc.Sign(ctx, "hello world")
		require.NoError(t, err)
		assert.Equal(t, first.Signature, second.Signature)
	})

	t.Run("Success_MessageNotNormalized", func(t *testing.T) {
		uc := newTestUseCase(t, "s3cr3t")

		signed, err := uc.Sign(ctx, "  hello world\n")
		require.NoError(t, err)
		assert.Equal(t, "  hello world\n", signed.Message)
		assert.NotEqual(t, goldenSignature, signed.Signature.String())
	})

	t.Run("Error_MissingMessage", func(t *testing.T) {
		uc := newTestUseCase(t, "s3cr3t")

		signed, err := uc.Sign(ctx, "")
		assert.Nil(t, signed)
		assert.ErrorIs(t, err, signingDomain.ErrMessageMissing)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_MissingSecret", func(t *testing.T) {
		uc := newTestUseCase(t, "")

		signed, err := uc.Sign(ctx, "hello world")
		assert.Nil(t, signed)
		assert.ErrorIs(t, err, signingDomain.ErrSecretMissing)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}

func TestSigningUseCase_Verify(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, "s3cr3t")

	t.Run("Success_Valid", func(t *testing.T) {
		verification, err := uc.Verify(ctx, "hello world", goldenSignature)
		require.NoError(t, err)
		assert.True(t, verification.Valid)
		assert.Equal(t, "hello world", verification.Message)
	})

	t.Run("Success_InvalidIsNotAnError", func(t *testing.T) {
		verification, err := uc.Verify(ctx, "hello world", "deadbeef")
		require.NoError(t, err)
		assert.False(t, verification.Valid)
	})

	t.Run("Success_RoundTrip", func(t *testing.T) {
		signed, err := uc.Sign(ctx, "round trip ✓")
		require.NoError(t, err)

		verification, err := uc.Verify(ctx, "round trip ✓", signed.Signature.String())
		require.NoError(t, err)
		assert.True(t, verification.Valid)
	})

	t.Run("Error_MissingSignature", func(t *testing.T) {
		verification, err := uc.Verify(ctx, "hello world", "")
		assert.Nil(t, verification)
		assert.ErrorIs(t, err, signingDomain.ErrSignatureMissing)
	})

	t.Run("Error_MissingMessage", func(t *testing.T) {
		verification, err := uc.Verify(ctx, "", goldenSignature)
		assert.Nil(t, verification)
		assert.ErrorIs(t, err, signingDomain.ErrMessageMissing)
	})

	t.Run("Error_MissingSecret", func(t *testing.T) {
		verification, err := newTestUseCase(t, "").Verify(ctx, "hello world", goldenSignature)
		assert.Nil(t, verification)
		assert.ErrorIs(t, err, signingDomain.ErrSecretMissing)
	})
}

func TestSigningUseCase_CheckSecret(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, newTestUseCase(t, "s3cr3t").CheckSecret(ctx))
	assert.ErrorIs(t, newTestUseCase(t, "").CheckSecret(ctx), signingDomain.ErrSecretMissing)
}
