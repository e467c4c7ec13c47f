package app

import (
	"context"
	"fmt"
	"log/slog"

	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
	signingHTTP "github.com/gen-relay/genlayer-relay/internal/signing/http"
	signingService "github.com/gen-relay/genlayer-relay/internal/signing/service"
	signingUseCase "github.com/gen-relay/genlayer-relay/internal/signing/usecase"
)

// minSecretBytes matches the smallest secret generate-secret produces.
const minSecretBytes = 16

// KMSService returns the KMS service used to unwrap SIGN_SECRET.
func (c *Container) KMSService() signingService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = signingService.NewKMSService()
	})
	return c.kmsService
}

// Secret returns the signing secret loaded from configuration. An unset
// SIGN_SECRET yields an empty secret, not an error.
func (c *Container) Secret() (signingDomain.Secret, error) {
	var err error
	c.secretInit.Do(func() {
		c.secret, err = c.initSecret()
		if err != nil {
			c.initErrors["secret"] = err
		}
	})
	if err != nil {
		return signingDomain.Secret{}, err
	}
	if storedErr, exists := c.initErrors["secret"]; exists {
		return signingDomain.Secret{}, storedErr
	}
	return c.secret, nil
}

// MACService returns the MAC service for the configured algorithm.
func (c *Container) MACService() (signingService.MACService, error) {
	var err error
	c.macServiceInit.Do(func() {
		c.macService, err = c.initMACService()
		if err != nil {
			c.initErrors["macService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["macService"]; exists {
		return nil, storedErr
	}
	return c.macService, nil
}

// SigningUseCase returns the signing use case.
func (c *Container) SigningUseCase() (signingUseCase.SigningUseCase, error) {
	var err error
	c.signingUseCaseInit.Do(func() {
		c.signingUseCase, err = c.initSigningUseCase()
		if err != nil {
			c.initErrors["signingUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["signingUseCase"]; exists {
		return nil, storedErr
	}
	return c.signingUseCase, nil
}

// SigningHandler returns the HTTP handler for /sign and /verify.
func (c *Container) SigningHandler() (*signingHTTP.SigningHandler, error) {
	var err error
	c.signingHandlerInit.Do(func() {
		c.signingHandler, err = c.initSigningHandler()
		if err != nil {
			c.initErrors["signingHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["signingHandler"]; exists {
		return nil, storedErr
	}
	return c.signingHandler, nil
}

// initSecret loads SIGN_SECRET, decrypting it through KMS when KMS_KEY_URI is set.
func (c *Container) initSecret() (signingDomain.Secret, error) {
	secret, err := signingService.LoadSecret(
		context.Background(),
		c.config.SignSecret,
		c.config.KMSKeyURI,
		c.KMSService(),
	)
	if err != nil {
		return signingDomain.Secret{}, fmt.Errorf("failed to load signing secret: %w", err)
	}

	switch {
	case secret.IsEmpty():
		c.Logger().Warn("SIGN_SECRET is not set; /sign and /verify will report secret missing")
	case secret.Len() < minSecretBytes:
		c.Logger().Warn("SIGN_SECRET is shorter than recommended",
			slog.Int("min_bytes", minSecretBytes),
		)
	}

	return secret, nil
}

// initMACService creates the MAC service for SIGN_ALGORITHM.
func (c *Container) initMACService() (signingService.MACService, error) {
	algorithm, err := signingDomain.ParseAlgorithm(c.config.SignAlgorithm)
	if err != nil {
		return nil, err
	}

	macService, err := signingService.NewHMACService(algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create mac service: %w", err)
	}
	return macService, nil
}

// initSigningUseCase creates the signing use case with all its dependencies.
func (c *Container) initSigningUseCase() (signingUseCase.SigningUseCase, error) {
	macService, err := c.MACService()
	if err != nil {
		return nil, fmt.Errorf("failed to get mac service for signing use case: %w", err)
	}

	secret, err := c.Secret()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret for signing use case: %w", err)
	}

	baseUseCase := signingUseCase.NewSigningUseCase(macService, secret)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for signing use case: %w", err)
		}
		return signingUseCase.NewSigningUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSigningHandler creates the signing HTTP handler.
func (c *Container) initSigningHandler() (*signingHTTP.SigningHandler, error) {
	useCase, err := c.SigningUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get signing use case for signing handler: %w", err)
	}
	return signingHTTP.NewSigningHandler(useCase, c.Logger()), nil
}
