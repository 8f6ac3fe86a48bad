package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"KEY_FILE",
	"CONFIG_FILE",
	"LINK_HOST",
	"CIPHER_ALGORITHM",
	"AGE_WORK_FACTOR",
	"KMS_KEY_URI",
	"LOG_LEVEL",
	"METRICS_ENABLED",
	"METRICS_NAMESPACE",
	"METRICS_TEXTFILE",
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				exeDir := executableDir()
				assert.Equal(t, filepath.Join(exeDir, "encryption.key"), cfg.KeyFilePath)
				assert.Equal(t, filepath.Join(exeDir, "config.json"), cfg.ConfigFilePath)
				assert.Equal(t, "vdo.ninja", cfg.LinkHost)
				assert.Equal(t, "aes-gcm", cfg.CipherAlgorithm)
				assert.Equal(t, 15, cfg.AgeWorkFactor)
				assert.Empty(t, cfg.KMSKeyURI)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "vdolink", cfg.MetricsNamespace)
				assert.Empty(t, cfg.MetricsTextfile)
			},
		},
		{
			name: "load custom file locations",
			envVars: map[string]string{
				"KEY_FILE":    "/var/lib/vdolink/encryption.key",
				"CONFIG_FILE": "/var/lib/vdolink/config.json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/lib/vdolink/encryption.key", cfg.KeyFilePath)
				assert.Equal(t, "/var/lib/vdolink/config.json", cfg.ConfigFilePath)
			},
		},
		{
			name: "load custom encryption configuration",
			envVars: map[string]string{
				"CIPHER_ALGORITHM": "age-scrypt",
				"AGE_WORK_FACTOR":  "12",
				"KMS_KEY_URI":      "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4=",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "age-scrypt", cfg.CipherAlgorithm)
				assert.Equal(t, 12, cfg.AgeWorkFactor)
				assert.Equal(t, "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4=", cfg.KMSKeyURI)
			},
		},
		{
			name: "load custom link and metrics configuration",
			envVars: map[string]string{
				"LINK_HOST":         "ninja.example.com",
				"LOG_LEVEL":         "debug",
				"METRICS_ENABLED":   "true",
				"METRICS_NAMESPACE": "custom",
				"METRICS_TEXTFILE":  "/var/lib/node_exporter/vdolink.prom",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ninja.example.com", cfg.LinkHost)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "custom", cfg.MetricsNamespace)
				assert.Equal(t, "/var/lib/node_exporter/vdolink.prom", cfg.MetricsTextfile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range configEnvVars {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestExecutableDir(t *testing.T) {
	dir := executableDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir) || dir == ".")
}
