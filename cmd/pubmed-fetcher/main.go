// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-fetcher CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/eutils"
	"github.com/pdiddy/pubmed-fetcher/internal/export"
	"github.com/pdiddy/pubmed-fetcher/internal/extract"
	"github.com/pdiddy/pubmed-fetcher/internal/pipeline"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const secretsDir = ".secrets/"

// errUpstream is returned in --strict mode when an upstream call failed.
var errUpstream = errors.New("upstream request failed")

// newRootCmd builds the CLI. v receives config file, environment, and flag
// values; main passes the global viper instance, tests pass a fresh one.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubmed-fetcher <query>",
		Short: "Fetch PubMed papers with non-academic authors",
		Long: `pubmed-fetcher searches PubMed for a query, retrieves summaries for the
top 5 matches, and flags authors whose affiliation does not look academic
(no "university", "college", "lab", or "institute"). The result is written
to a CSV file, one row per paper.

The query accepts full PubMed syntax, e.g. "cancer AND immunotherapy".`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return readConfigFile(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, v, args[0])
		},
	}

	cmd.Flags().StringP("file", "f", "papers.csv", "output file name (default extension follows --format)")
	cmd.Flags().BoolP("debug", "d", false, "enable debug logging")
	cmd.Flags().String("format", "csv", "output format: csv, json, yaml, or sqlite")
	cmd.Flags().Bool("print", false, "also print the results as a table on stdout")
	cmd.Flags().Bool("strict", false, "exit with status 2 when a PubMed request fails")
	cmd.Flags().String("config", "", "config file (default: ./pubmed-fetcher.yaml or ~/.config/pubmed-fetcher/config.yaml)")

	v.BindPFlag("output.file", cmd.Flags().Lookup("file"))
	v.BindPFlag("output.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runFetch(cmd *cobra.Command, v *viper.Viper, query string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	log := newLogger(debug, cmd.ErrOrStderr())

	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("path", used).Msg("Using config file")
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	s, err := secrets.Load(secretsDir, log)
	if err != nil {
		return err
	}
	applySecrets(&cfg, s)

	client := eutils.NewClient(cfg.Eutils, log)
	p := &pipeline.Pipeline{
		Searcher:   client,
		Fetcher:    client,
		Classifier: extract.NewKeywordClassifier(cfg.Classifier.AcademicKeywords),
		Log:        log,
	}

	res, err := p.Run(cmd.Context(), query, cfg.Output)
	if err != nil {
		return err
	}

	if printTable, _ := cmd.Flags().GetBool("print"); printTable {
		export.FormatTable(res.Records, cmd.OutOrStdout())
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && res.UpstreamFailed() {
		return errUpstream
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(viper.GetViper()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}
