package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
	cryptoRepository "github.com/vdolink/vdolink/internal/crypto/repository"
	cryptoService "github.com/vdolink/vdolink/internal/crypto/service"
	cryptoUseCase "github.com/vdolink/vdolink/internal/crypto/usecase"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// KMSKeeper returns the keeper that seals the key file, or nil when KMS_KEY_URI is empty.
func (c *Container) KMSKeeper(ctx context.Context) (cryptoDomain.KMSKeeper, error) {
	var err error
	c.kmsKeeperInit.Do(func() {
		c.kmsKeeper, err = c.initKMSKeeper(ctx)
		if err != nil {
			c.initErrors["kmsKeeper"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["kmsKeeper"]; exists {
		return nil, storedErr
	}
	return c.kmsKeeper, nil
}

// KeyUseCase returns the key store use case.
func (c *Container) KeyUseCase(ctx context.Context) (cryptoUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase(ctx)
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// StringCipher returns the cipher selected by CIPHER_ALGORITHM.
func (c *Container) StringCipher() (cryptoService.StringCipher, error) {
	var err error
	c.stringCipherInit.Do(func() {
		c.stringCipher, err = c.initStringCipher()
		if err != nil {
			c.initErrors["stringCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["stringCipher"]; exists {
		return nil, storedErr
	}
	return c.stringCipher, nil
}

// initKMSKeeper opens the configured keeper.
func (c *Container) initKMSKeeper(ctx context.Context) (cryptoDomain.KMSKeeper, error) {
	if c.config.KMSKeyURI == "" {
		return nil, nil
	}
	keeper, err := c.KMSService().OpenKeeper(ctx, c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open kms keeper: %w", err)
	}
	return keeper, nil
}

// initKeyUseCase wires the key file repository with the plain or KMS codec.
func (c *Container) initKeyUseCase(ctx context.Context) (cryptoUseCase.KeyUseCase, error) {
	keeper, err := c.KMSKeeper(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get kms keeper for key use case: %w", err)
	}

	codec := cryptoUseCase.NewPlainKeyCodec()
	if keeper != nil {
		codec = cryptoUseCase.NewKMSKeyCodec(keeper)
	}

	return cryptoUseCase.NewKeyUseCase(
		cryptoRepository.NewFileKeyRepository(c.Fs()),
		codec,
		cryptoService.NewRandomSource(nil),
		c.Logger(),
	), nil
}

// initStringCipher parses the configured algorithm and creates the cipher.
func (c *Container) initStringCipher() (cryptoService.StringCipher, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.CipherAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid CIPHER_ALGORITHM: %w", err)
	}
	cipher, err := cryptoService.NewStringCipher(alg, c.config.AgeWorkFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher, nil
}
