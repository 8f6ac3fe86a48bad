package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
	apperrors "github.com/vdolink/vdolink/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSSchemes lists the key URI schemes that can seal the key file.
var KMSSchemes = []string{"base64key", "awskms", "gcpkms", "azurekeyvault", "hashivault"}

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens the keeper named by keyURI. The URI scheme must be one of KMSSchemes;
// anything else fails with an error wrapping ErrInvalidInput before any provider is contacted.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	scheme, err := kmsScheme(keyURI)
	if err != nil {
		return nil, err
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s keeper: %w", scheme, err)
	}
	return keeper, nil
}

func kmsScheme(keyURI string) (string, error) {
	if keyURI == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "kms key uri is empty")
	}
	u, err := url.Parse(keyURI)
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput, "kms key uri is malformed: %v", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(KMSSchemes, scheme) {
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput,
			"unsupported kms scheme %q (valid options: %s)", u.Scheme, strings.Join(KMSSchemes, ", "))
	}
	return scheme, nil
}
