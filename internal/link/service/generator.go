package service

import (
	"fmt"

	cryptoService "github.com/vdolink/vdolink/internal/crypto/service"
	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
)

// CredentialGenerator draws push ids and audience passwords from a RandomSource.
type CredentialGenerator struct {
	random *cryptoService.RandomSource
}

// NewCredentialGenerator creates a CredentialGenerator. A nil random uses crypto/rand.
func NewCredentialGenerator(random *cryptoService.RandomSource) *CredentialGenerator {
	if random == nil {
		random = cryptoService.NewRandomSource(nil)
	}
	return &CredentialGenerator{random: random}
}

// PushID returns PushIDLength uniform alphanumeric characters.
func (g *CredentialGenerator) PushID() (string, error) {
	return g.random.Alphanumeric(linkDomain.PushIDLength)
}

// Password returns a PasswordLength password that always satisfies the password policy:
// one character from each class, the rest from their union, then shuffled.
func (g *CredentialGenerator) Password() (string, error) {
	classes := []string{
		linkDomain.UppercaseChars,
		linkDomain.LowercaseChars,
		linkDomain.DigitChars,
		linkDomain.SpecialChars,
	}

	password := make([]byte, 0, linkDomain.PasswordLength)
	for _, class := range classes {
		c, err := g.random.Pick(class)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		password = append(password, c)
	}

	rest, err := g.random.String(linkDomain.PasswordChars, linkDomain.PasswordLength-len(classes))
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	password = append(password, rest...)

	if err := g.random.Shuffle(password); err != nil {
		return "", fmt.Errorf("failed to shuffle password: %w", err)
	}
	return string(password), nil
}

// SecureURL returns a link on host with a fresh push id and audience password.
func (g *CredentialGenerator) SecureURL(host string) (string, error) {
	pushID, err := g.PushID()
	if err != nil {
		return "", err
	}
	password, err := g.Password()
	if err != nil {
		return "", err
	}
	return linkDomain.BuildURL(host, pushID, password), nil
}
