package testsupport

import (
	"path/filepath"
	"testing"

	"catalogimg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config whose catalog lives in a unique temp directory.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.CatalogPath = filepath.Join(base, "db.json")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalogPath points the test config at an existing catalog file.
func WithCatalogPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.CatalogPath = path
	}
}

// WithoutLock disables the catalog lock on the test config.
func WithoutLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rewrite.Lock = false
	}
}

// BaseDir returns the directory holding the config's catalog.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.CatalogPath)
}
