// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const envPrefix = "PUBMED_FETCHER"

// readConfigFile points v at cfgFile, or at the first of
// ./pubmed-fetcher.yaml and ~/.config/pubmed-fetcher/config.yaml that exists.
// A missing file is not an error; an explicit cfgFile that cannot be read is.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = findConfigFile()
		if cfgFile == "" {
			return nil
		}
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// configCandidates returns the implicit config locations in lookup order.
func configCandidates() []string {
	paths := []string{"pubmed-fetcher.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pubmed-fetcher", "config.yaml"))
	}
	return paths
}

func findConfigFile() string {
	for _, p := range configCandidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// setDefaults registers every config key so environment variables are
// picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := types.DefaultFetchConfig()
	v.SetDefault("eutils.base_url", d.Eutils.BaseURL)
	v.SetDefault("eutils.timeout", d.Eutils.Timeout)
	v.SetDefault("eutils.user_agent", d.Eutils.UserAgent)
	v.SetDefault("eutils.tool", d.Eutils.Tool)
	v.SetDefault("eutils.email", d.Eutils.Email)
	v.SetDefault("classifier.academic_keywords", d.Classifier.AcademicKeywords)
	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("output.format", string(d.Output.Format))
}

// loadConfig resolves the run configuration from v.
// When no file name was given anywhere, the default name takes the
// extension of the chosen format.
func loadConfig(v *viper.Viper) (types.FetchConfig, error) {
	fileSet := v.IsSet("output.file")
	setDefaults(v)

	var cfg types.FetchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.FetchConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Output.Format = types.OutputFormat(strings.ToLower(string(cfg.Output.Format)))
	if !cfg.Output.Format.Valid() {
		return types.FetchConfig{}, fmt.Errorf("unsupported output format %q (want csv, json, yaml, or sqlite)", cfg.Output.Format)
	}
	if !fileSet {
		cfg.Output.File = types.DefaultOutputFile(cfg.Output.Format)
	}
	if cfg.Output.File == "" {
		return types.FetchConfig{}, fmt.Errorf("output file name is empty")
	}
	if cfg.Eutils.BaseURL == "" {
		return types.FetchConfig{}, fmt.Errorf("eutils.base_url is empty")
	}
	return cfg, nil
}

// applySecrets fills identification fields the config left empty.
func applySecrets(cfg *types.FetchConfig, s map[string]string) {
	if cfg.Eutils.Email == "" {
		cfg.Eutils.Email = s[secrets.NCBIEmail]
	}
	if cfg.Eutils.Tool == "" {
		cfg.Eutils.Tool = s[secrets.NCBITool]
	}
}
