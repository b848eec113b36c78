// Package config loads, normalizes, and validates catalogimg configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CATALOGIMG_CATALOG_PATH
// environment override. Always obtain settings through this package so
// downstream code receives an absolute catalog path, canonical log settings,
// and clear validation errors.
package config
