package config

const (
	defaultConfigPath  = "~/.config/catalogimg/config.toml"
	projectConfigName  = "catalogimg.toml"
	defaultCatalogPath = "db.json"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultRewriteLock = true

	// EnvCatalogPath overrides catalog_path when set.
	EnvCatalogPath = "CATALOGIMG_CATALOG_PATH"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		CatalogPath: defaultCatalogPath,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Rewrite: Rewrite{
			Lock: defaultRewriteLock,
		},
	}
}
