package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
	cryptoRepository "github.com/vdolink/vdolink/internal/crypto/repository"
	cryptoService "github.com/vdolink/vdolink/internal/crypto/service"
	apperrors "github.com/vdolink/vdolink/internal/errors"
)

const keyPath = "/opt/vdolink/encryption.key"

// mockKeyRepository is a mock implementation of KeyRepository for testing.
type mockKeyRepository struct {
	mock.Mock
}

func (m *mockKeyRepository) Get(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockKeyRepository) Create(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *mockKeyRepository) Exists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

var _ KeyRepository = (*mockKeyRepository)(nil)

type staticGenerator struct {
	value string
	err   error
}

func (g staticGenerator) Alphanumeric(length int) (string, error) {
	return g.value, g.err
}

func newFileKeyUseCase(fs afero.Fs) KeyUseCase {
	return NewKeyUseCase(
		cryptoRepository.NewFileKeyRepository(fs),
		NewPlainKeyCodec(),
		cryptoService.NewRandomSource(nil),
		slog.Default(),
	)
}

func TestKeyUseCase_LoadOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreatesKeyOnFirstUse", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		uc := newFileKeyUseCase(fs)

		key, err := uc.LoadOrCreate(ctx, keyPath)
		require.NoError(t, err)
		assert.Len(t, key.Reveal(), cryptoDomain.KeyLength)
		for _, c := range key.Reveal() {
			isValid := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
			assert.True(t, isValid, "character %c is not alphanumeric", c)
		}

		content, err := afero.ReadFile(fs, keyPath)
		require.NoError(t, err)
		assert.Equal(t, key.Reveal(), string(content), "key file holds exactly the key")
	})

	t.Run("Success_ConsecutiveCallsReturnSameKey", func(t *testing.T) {
		uc := newFileKeyUseCase(afero.NewMemMapFs())

		first, err := uc.LoadOrCreate(ctx, keyPath)
		require.NoError(t, err)
		second, err := uc.LoadOrCreate(ctx, keyPath)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Success_ReadsExistingKey", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, keyPath, []byte("ExistingKeyExistingKeyExisting12\n"), 0o600))

		key, err := newFileKeyUseCase(fs).LoadOrCreate(ctx, keyPath)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.SymmetricKey("ExistingKeyExistingKeyExisting12"), key)
	})

	t.Run("Success_DeletedKeyIsRegenerated", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		uc := newFileKeyUseCase(fs)

		first, err := uc.LoadOrCreate(ctx, keyPath)
		require.NoError(t, err)
		require.NoError(t, fs.Remove(keyPath))

		second, err := uc.LoadOrCreate(ctx, keyPath)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Success_ConcurrentCreateUsesPersistedKey", func(t *testing.T) {
		repo := &mockKeyRepository{}
		repo.On("Get", ctx, keyPath).Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "missing")).Once()
		repo.On("Create", ctx, keyPath, mock.Anything).Return(apperrors.Wrap(apperrors.ErrConflict, "exists")).Once()
		repo.On("Get", ctx, keyPath).Return([]byte("WinnerKeyWinnerKeyWinnerKey12345"), nil).Once()

		uc := NewKeyUseCase(repo, NewPlainKeyCodec(), staticGenerator{value: "LoserKeyLoserKeyLoserKeyLoser123"}, slog.Default())
		key, err := uc.LoadOrCreate(ctx, keyPath)

		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.SymmetricKey("WinnerKeyWinnerKeyWinnerKey12345"), key)
		repo.AssertExpectations(t)
	})

	t.Run("Error_ReadFailureIsSurfaced", func(t *testing.T) {
		repo := &mockKeyRepository{}
		repo.On("Get", ctx, keyPath).Return(nil, apperrors.Wrap(apperrors.ErrStorage, "permission denied")).Once()

		uc := NewKeyUseCase(repo, NewPlainKeyCodec(), staticGenerator{value: "unused"}, slog.Default())
		_, err := uc.LoadOrCreate(ctx, keyPath)

		assert.ErrorIs(t, err, apperrors.ErrStorage)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_WriteFailureIsFatal", func(t *testing.T) {
		uc := newFileKeyUseCase(afero.NewReadOnlyFs(afero.NewMemMapFs()))
		_, err := uc.LoadOrCreate(ctx, keyPath)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
	})

	t.Run("Error_GeneratorFailure", func(t *testing.T) {
		repo := &mockKeyRepository{}
		repo.On("Get", ctx, keyPath).Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "missing")).Once()

		uc := NewKeyUseCase(repo, NewPlainKeyCodec(), staticGenerator{err: errors.New("no entropy")}, slog.Default())
		_, err := uc.LoadOrCreate(ctx, keyPath)

		assert.ErrorContains(t, err, "no entropy")
	})

	t.Run("Error_EmptyKeyFile", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, keyPath, []byte("  \n"), 0o600))

		_, err := newFileKeyUseCase(fs).LoadOrCreate(ctx, keyPath)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyFileInvalid)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
	})
}

func TestKeyUseCase_Exists(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	uc := newFileKeyUseCase(fs)

	exists, err := uc.Exists(ctx, keyPath)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = uc.LoadOrCreate(ctx, keyPath)
	require.NoError(t, err)

	exists, err = uc.Exists(ctx, keyPath)
	require.NoError(t, err)
	assert.True(t, exists)
}
