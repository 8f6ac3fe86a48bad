// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

const (
	// DefaultKeyFileName is the legacy key file name, stored beside the executable.
	DefaultKeyFileName = "encryption.key"
	// DefaultConfigFileName is the legacy config file name, stored beside the executable.
	DefaultConfigFileName = "config.json"
)

// Config holds all application configuration.
type Config struct {
	// KeyFilePath is the location of the symmetric key file.
	KeyFilePath string
	// ConfigFilePath is the location of the encrypted configuration record.
	ConfigFilePath string

	// LinkHost is the host composed into generated and manual links.
	LinkHost string

	// CipherAlgorithm selects the cipher used for the stored link
	// (aes-gcm, chacha20-poly1305 or age-scrypt).
	CipherAlgorithm string
	// AgeWorkFactor is the scrypt work factor (log2 N) used by the age-scrypt cipher.
	AgeWorkFactor int

	// KMSKeyURI seals the key file with a gocloud.dev secrets keeper when set
	// (e.g., base64key://..., awskms://..., gcpkms://...).
	KMSKeyURI string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is where metrics are flushed on shutdown, in Prometheus text format.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	baseDir := executableDir()

	return &Config{
		// Files
		KeyFilePath:    env.GetString("KEY_FILE", filepath.Join(baseDir, DefaultKeyFileName)),
		ConfigFilePath: env.GetString("CONFIG_FILE", filepath.Join(baseDir, DefaultConfigFileName)),

		// Links
		LinkHost: env.GetString("LINK_HOST", "vdo.ninja"),

		// Encryption
		CipherAlgorithm: env.GetString("CIPHER_ALGORITHM", "aes-gcm"),
		AgeWorkFactor:   env.GetInt("AGE_WORK_FACTOR", 15),
		KMSKeyURI:       env.GetString("KMS_KEY_URI", ""),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "vdolink"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// executableDir returns the directory holding the running binary, falling back to the
// working directory when it cannot be resolved.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
