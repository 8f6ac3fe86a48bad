package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/vdolink/vdolink/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		KeyFilePath:      "/opt/vdolink/encryption.key",
		ConfigFilePath:   "/opt/vdolink/config.json",
		LinkHost:         "vdo.ninja",
		CipherAlgorithm:  "aes-gcm",
		AgeWorkFactor:    15,
		LogLevel:         "info",
		MetricsNamespace: "vdolink",
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}
	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
	if _, ok := container.Fs().(*afero.OsFs); !ok {
		t.Errorf("expected OS filesystem by default, got %T", container.Fs())
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "debug"

	var buf bytes.Buffer
	container := NewContainer(cfg, WithLogOutput(&buf))
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger != container.Logger() {
		t.Error("expected same logger instance on multiple calls")
	}

	logger.Debug("probe")
	if !strings.Contains(buf.String(), `"msg":"probe"`) {
		t.Errorf("expected JSON debug record, got %q", buf.String())
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "invalid"

	var buf bytes.Buffer
	logger := NewContainer(cfg, WithLogOutput(&buf)).Logger()

	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug record should be filtered at info level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("info record should be written")
	}
}

// TestContainerLinkUseCase verifies the full link wiring on an in-memory filesystem.
func TestContainerLinkUseCase(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	container := NewContainer(testConfig(), WithFs(fs), WithLogOutput(&bytes.Buffer{}))

	useCase, err := container.LinkUseCase(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := container.LinkUseCase(ctx)
	if err != nil || again != useCase {
		t.Error("expected same link use case instance on multiple calls")
	}

	if err := useCase.SetManual(ctx, "abc123", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	url, ok := useCase.Load(ctx)
	if !ok || url != "https://vdo.ninja/?push=abc123" {
		t.Errorf("unexpected load result %q, %v", url, ok)
	}

	if exists, _ := afero.Exists(fs, "/opt/vdolink/encryption.key"); !exists {
		t.Error("expected key file to be created")
	}
}

// TestContainerInitializationErrors verifies that initialization errors are properly handled.
func TestContainerInitializationErrors(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.CipherAlgorithm = "rot13"

	container := NewContainer(cfg, WithFs(afero.NewMemMapFs()), WithLogOutput(&bytes.Buffer{}))

	if _, err := container.LinkUseCase(ctx); err == nil {
		t.Error("expected error for unsupported cipher algorithm")
	}
	if _, err := container.LinkUseCase(ctx); err == nil {
		t.Error("expected error on second call to LinkUseCase()")
	}

	cfg = testConfig()
	cfg.KMSKeyURI = "notakms://key"
	container = NewContainer(cfg, WithFs(afero.NewMemMapFs()), WithLogOutput(&bytes.Buffer{}))
	if _, err := container.KeyUseCase(ctx); err == nil {
		t.Error("expected error for unknown KMS scheme")
	}
}

// TestContainerKMSSealedKey verifies that a configured KMS keeper seals the key file.
func TestContainerKMSSealedKey(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	cfg := testConfig()
	cfg.KMSKeyURI = "base64key://" + base64.URLEncoding.EncodeToString(bytes.Repeat([]byte{7}, 32))

	container := NewContainer(cfg, WithFs(fs), WithLogOutput(&bytes.Buffer{}))
	defer func() { _ = container.Shutdown(ctx) }()

	keyUseCase, err := container.KeyUseCase(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key, err := keyUseCase.LoadOrCreate(ctx, cfg.KeyFilePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := afero.ReadFile(fs, cfg.KeyFilePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) == key.Reveal() {
		t.Error("expected the key file to be sealed")
	}
}

// TestContainerLazyInitialization verifies that components are only initialized when accessed.
func TestContainerLazyInitialization(t *testing.T) {
	container := NewContainer(testConfig(), WithLogOutput(&bytes.Buffer{}))

	if container.logger != nil {
		t.Error("expected logger to be nil before first access")
	}
	if container.linkUseCase != nil {
		t.Error("expected link use case to be nil before first access")
	}

	if container.Logger() == nil {
		t.Fatal("expected non-nil logger")
	}
	if container.logger == nil {
		t.Error("expected logger to be initialized after access")
	}
}

// TestContainerMetricsDisabled verifies that disabled metrics fall back to a no-op recorder.
func TestContainerMetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig())

	provider, err := container.MetricsProvider()
	if err != nil || provider != nil {
		t.Errorf("expected nil provider without error, got %v, %v", provider, err)
	}
	if _, err := container.BusinessMetrics(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestContainerShutdownWritesMetrics verifies that shutdown flushes metrics to the textfile.
func TestContainerShutdownWritesMetrics(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsTextfile = filepath.Join(t.TempDir(), "vdolink.prom")

	container := NewContainer(cfg, WithFs(afero.NewMemMapFs()), WithLogOutput(&bytes.Buffer{}))
	useCase, err := container.LinkUseCase(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := useCase.GenerateAndPersist(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := container.Shutdown(ctx); err != nil {
		t.Fatalf("unexpected error during shutdown: %v", err)
	}

	data, err := os.ReadFile(cfg.MetricsTextfile)
	if err != nil {
		t.Fatalf("expected metrics textfile: %v", err)
	}
	if !strings.Contains(string(data), `operation="link_generate"`) {
		t.Errorf("expected link_generate sample, got:\n%s", data)
	}
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(testConfig())

	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}
