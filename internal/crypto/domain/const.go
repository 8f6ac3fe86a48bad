package domain

// Algorithm represents the cipher used to protect the stored link.
//
// The AEAD algorithms derive a 256-bit cipher key from the symmetric key with HKDF-SHA256 and a
// per-encryption salt. The age algorithm treats the symmetric key as a scrypt passphrase.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM (12-byte nonce, 16-byte tag).
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305 (12-byte nonce, 16-byte tag).
	ChaCha20 Algorithm = "chacha20-poly1305"

	// AgeScrypt represents age file encryption with an scrypt passphrase recipient.
	AgeScrypt Algorithm = "age-scrypt"
)

const (
	// KeyLength is the number of characters in a generated symmetric key.
	KeyLength = 32

	// CipherKeySize is the size in bytes of derived AEAD keys.
	CipherKeySize = 32

	// SaltSize is the size in bytes of the HKDF salt prefixed to AEAD ciphertext.
	SaltSize = 16
)

// ParseAlgorithm converts a configuration string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20, AgeScrypt:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
