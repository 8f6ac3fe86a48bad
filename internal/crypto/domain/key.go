package domain

import "strings"

// SymmetricKey is the single secret used to encrypt and decrypt the stored link.
//
// Generated keys are KeyLength alphanumeric characters. Keys read from disk are accepted at
// any non-empty length; ciphers stretch them through a key-derivation step.
type SymmetricKey string

// NewSymmetricKey trims surrounding whitespace from raw key file content and rejects empty keys.
func NewSymmetricKey(raw string) (SymmetricKey, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", ErrInvalidKey
	}
	return SymmetricKey(key), nil
}

// Bytes returns a fresh copy of the key material. Callers should Zero it after use.
func (k SymmetricKey) Bytes() []byte {
	return []byte(k)
}

// String redacts the key so it never ends up in logs by accident.
func (k SymmetricKey) String() string {
	if k == "" {
		return ""
	}
	return "[REDACTED]"
}

// Reveal returns the raw key text, used only when writing the key file.
func (k SymmetricKey) Reveal() string {
	return string(k)
}

// Zero overwrites b so key material does not linger after use.
func Zero(b []byte) {
	clear(b)
}
