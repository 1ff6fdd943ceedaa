// Command venturecase scrapes the EIP and SET Ventures portfolio pages,
// filters to early-stage energy-relevant companies, and writes them to CSV.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/classify"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/config"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/export"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/logging"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/pipeline"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source/eip"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source/fetch"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source/setventures"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noFilter bool
		useMock  bool
		output   string
	)

	cmd := &cobra.Command{
		Use:          "venturecase",
		Short:        "Build a CSV of early-stage energy companies from VC portfolio pages",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if output != "" {
				cfg.Output.Path = output
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			logging.Init(logging.ParseLevel(cfg.LogLevel))
			return run(cmd, cfg, pipeline.Options{NoFilter: noFilter, UseMock: useMock})
		},
	}

	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "skip the relevance classification stage")
	cmd.Flags().BoolVar(&useMock, "use-mock", false, "use the built-in demo dataset instead of scraping")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output path (overrides VENTURE_OUTPUT)")
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config, opts pipeline.Options) error {
	ctx := cmd.Context()
	fetcher := fetch.New(fetch.WithTimeout(cfg.Sources.HTTPTimeout))

	sources, err := buildSources(fetcher, cfg.Sources)
	if err != nil {
		return err
	}

	var classifier classify.Classifier
	switch {
	case opts.NoFilter:
		// Stage skipped entirely, no client needed.
	case cfg.LLM.Disabled:
		slog.Warn("relevance classification disabled by configuration")
	case cfg.LLM.APIKey == "":
		slog.Warn("GEMINI_API_KEY not set, relevance filtering degrades to pass-everything")
	default:
		g, err := classify.NewGemini(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Keywords, cfg.LLM.CharBudget)
		if err != nil {
			slog.Warn("classifier unavailable, relevance filtering degrades to pass-everything", "error", err)
		} else {
			classifier = g
		}
	}

	exporter := pipeline.ExporterFunc(func(companies []model.Company) error {
		return export.CSV(companies, cfg.Output.Path)
	})

	p := pipeline.New(fetcher, sources, classifier, exporter, opts)
	final, err := p.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d relevant companies to %s\n", len(final), cfg.Output.Path)
	if len(final) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No companies matched the filters. Try --use-mock for demo data.")
	}
	return nil
}

// buildSources resolves the registered parsers, EIP before SET — the output
// order contract.
func buildSources(fetcher source.Fetcher, cfg config.SourceConfig) ([]pipeline.Source, error) {
	specs := []struct {
		name      string
		urls      []string
		localHTML string
	}{
		{eip.SourceName, cfg.EIPURLs, cfg.EIPLocalHTML},
		{setventures.SourceName, cfg.SETURLs, cfg.SETLocalHTML},
	}

	var sources []pipeline.Source
	for _, spec := range specs {
		ctor, err := source.Get(spec.name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, pipeline.Source{
			Parser:    ctor(fetcher),
			URLs:      spec.urls,
			LocalHTML: spec.localHTML,
		})
	}
	return sources, nil
}
