package usecase

import (
	"context"
	"log/slog"

	cryptoUseCase "github.com/vdolink/vdolink/internal/crypto/usecase"
	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
)

// Paths locates the key file and the config file.
type Paths struct {
	KeyFile    string
	ConfigFile string
}

type linkUseCase struct {
	paths     Paths
	host      string
	keys      cryptoUseCase.KeyUseCase
	store     ConfigStore
	generator LinkGenerator
	validator PasswordValidator
	logger    *slog.Logger
}

// NewLinkUseCase creates a LinkUseCase. An empty host falls back to domain.DefaultHost.
func NewLinkUseCase(
	paths Paths,
	host string,
	keys cryptoUseCase.KeyUseCase,
	store ConfigStore,
	generator LinkGenerator,
	validator PasswordValidator,
	logger *slog.Logger,
) LinkUseCase {
	if host == "" {
		host = linkDomain.DefaultHost
	}
	return &linkUseCase{
		paths:     paths,
		host:      host,
		keys:      keys,
		store:     store,
		generator: generator,
		validator: validator,
		logger:    logger,
	}
}

func (l *linkUseCase) GenerateAndPersist(ctx context.Context) (string, error) {
	url, err := l.generator.SecureURL(l.host)
	if err != nil {
		return "", err
	}
	if err := l.persist(ctx, url); err != nil {
		return "", err
	}

	l.logger.InfoContext(ctx, "generated new link", slog.String("config_file", l.paths.ConfigFile))
	return url, nil
}

func (l *linkUseCase) SetManual(ctx context.Context, pushID, audience string) error {
	if pushID == "" {
		return linkDomain.ErrPushIDRequired
	}
	if audience != "" {
		if err := l.validator.Validate(audience); err != nil {
			return err
		}
	}

	if err := l.persist(ctx, linkDomain.BuildURL(l.host, pushID, audience)); err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "stored manual link",
		slog.String("config_file", l.paths.ConfigFile),
		slog.Bool("audience", audience != ""),
	)
	return nil
}

// Load never creates a key: without a key file there is nothing that could decrypt.
func (l *linkUseCase) Load(ctx context.Context) (string, bool) {
	exists, err := l.keys.Exists(ctx, l.paths.KeyFile)
	if err != nil || !exists {
		l.logger.DebugContext(ctx, "no usable key file", slog.String("key_file", l.paths.KeyFile), slog.Any("error", err))
		return "", false
	}

	key, err := l.keys.LoadOrCreate(ctx, l.paths.KeyFile)
	if err != nil {
		l.logger.DebugContext(ctx, "key unavailable", slog.String("key_file", l.paths.KeyFile), slog.Any("error", err))
		return "", false
	}
	return l.store.Load(ctx, l.paths.ConfigFile, key)
}

func (l *linkUseCase) Ensure(ctx context.Context) (string, bool, error) {
	if url, ok := l.Load(ctx); ok {
		return url, false, nil
	}

	url, err := l.GenerateAndPersist(ctx)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (l *linkUseCase) persist(ctx context.Context, url string) error {
	key, err := l.keys.LoadOrCreate(ctx, l.paths.KeyFile)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, l.paths.ConfigFile, key, url)
}
