package app

import (
	"context"
	"fmt"

	linkRepository "github.com/vdolink/vdolink/internal/link/repository"
	linkService "github.com/vdolink/vdolink/internal/link/service"
	linkUseCase "github.com/vdolink/vdolink/internal/link/usecase"
)

// LinkUseCase returns the link use case, decorated with metrics.
func (c *Container) LinkUseCase(ctx context.Context) (linkUseCase.LinkUseCase, error) {
	var err error
	c.linkUseCaseInit.Do(func() {
		c.linkUseCase, err = c.initLinkUseCase(ctx)
		if err != nil {
			c.initErrors["linkUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["linkUseCase"]; exists {
		return nil, storedErr
	}
	return c.linkUseCase, nil
}

// initLinkUseCase creates the link use case with all its dependencies.
func (c *Container) initLinkUseCase(ctx context.Context) (linkUseCase.LinkUseCase, error) {
	logger := c.Logger()

	keyUseCase, err := c.KeyUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for link use case: %w", err)
	}

	cipher, err := c.StringCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for link use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for link use case: %w", err)
	}

	store := linkService.NewEncryptedConfigStore(
		linkRepository.NewFileRecordRepository(c.Fs()),
		cipher,
		logger,
	)

	useCase := linkUseCase.NewLinkUseCase(
		linkUseCase.Paths{
			KeyFile:    c.config.KeyFilePath,
			ConfigFile: c.config.ConfigFilePath,
		},
		c.config.LinkHost,
		keyUseCase,
		store,
		linkService.NewCredentialGenerator(nil),
		linkService.NewPasswordValidator(),
		logger,
	)

	return linkUseCase.NewLinkUseCaseWithMetrics(useCase, businessMetrics), nil
}
