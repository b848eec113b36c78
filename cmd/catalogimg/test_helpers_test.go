package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"catalogimg/internal/config"
	"catalogimg/internal/testsupport"
)

type cliTestEnv struct {
	cfg         *config.Config
	homeDir     string
	configPath  string
	catalogPath string
}

// setupCLITestEnv isolates HOME and writes a config pointing at a catalog in
// a temp directory. The catalog itself is written by each test.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	t.Setenv("HOME", homeDir)
	t.Setenv(config.EnvCatalogPath, "")

	configPath := filepath.Join(base, "catalogimg.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:         cfg,
		homeDir:     homeDir,
		configPath:  configPath,
		catalogPath: cfg.CatalogPath,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--log-level", "error"}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := "catalog_path = " + quoteTOML(cfg.CatalogPath) + "\n\n[logging]\nlevel = \"error\"\n\n[rewrite]\nlock = true\n"
	testsupport.WriteFile(t, path, content)
}

func quoteTOML(value string) string {
	return "'" + value + "'"
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
