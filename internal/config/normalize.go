package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv(EnvCatalogPath); ok && strings.TrimSpace(value) != "" {
		c.CatalogPath = value
	}
	c.CatalogPath = strings.TrimSpace(c.CatalogPath)
	if c.CatalogPath == "" {
		return nil
	}
	var err error
	if c.CatalogPath, err = expandPath(c.CatalogPath); err != nil {
		return fmt.Errorf("catalog_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
