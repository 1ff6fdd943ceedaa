// Package pipeline composes the portfolio run: parse both sources, enrich
// rounds, filter by round, classify relevance in one bulk call, export CSV.
// Five sequential stages, no retries, no state across runs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/classify"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/enrich"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/filter"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source/demo"
)

// Exporter consumes the final ordered record sequence.
type Exporter interface {
	Export(companies []model.Company) error
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(companies []model.Company) error

func (f ExporterFunc) Export(companies []model.Company) error { return f(companies) }

// Source pairs a parser with the locations it reads. URLs are tried in
// order; LocalHTML is the fallback file when the URLs yield nothing.
type Source struct {
	Parser    source.Parser
	URLs      []string
	LocalHTML string
}

// Options selects pipeline variants.
type Options struct {
	// NoFilter skips the relevance stage entirely: every round-allowed
	// record survives. This is distinct from the classifier's degraded mode.
	NoFilter bool

	// UseMock feeds the built-in demo dataset through the pipeline instead
	// of scraping.
	UseMock bool
}

// Pipeline wires the fetcher, parsers, classifier, and exporter into one run.
type Pipeline struct {
	fetcher    source.Fetcher
	sources    []Source
	classifier classify.Classifier // nil = classification disabled
	exporter   Exporter
	opts       Options
}

// New creates a Pipeline from its collaborators. Sources are consumed in the
// given order, which fixes the order of the output records.
func New(fetcher source.Fetcher, sources []Source, classifier classify.Classifier, exporter Exporter, opts Options) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		sources:    sources,
		classifier: classifier,
		exporter:   exporter,
		opts:       opts,
	}
}

// Run executes the five stages and returns the exported records.
func (p *Pipeline) Run(ctx context.Context) ([]model.Company, error) {
	// Stage 1: parse every source, EIP entries before SET entries.
	var records []model.Company
	for _, src := range p.sources {
		parsed, err := p.collect(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		records = append(records, parsed...)
	}

	// Stage 2: enrich every record. Known companies are backfilled from the
	// demo lookup first; whatever is still Unknown gets the mock default.
	lookup := demo.Lookup()
	enriched := make([]model.Company, 0, len(records))
	for _, c := range records {
		c = enrich.FillFromLookup(c, lookup)
		c = enrich.Round(c)
		enriched = append(enriched, c)
	}

	// Stage 3: early-stage rounds only.
	eligible := filter.ByRound(enriched)
	slog.Info("round filter applied", "in", len(enriched), "out", len(eligible))

	// Stage 4: one bulk relevance call, unless the variant skips it.
	final := eligible
	if p.opts.NoFilter {
		slog.Info("relevance filter skipped by configuration")
	} else {
		descriptions := make([]string, len(eligible))
		for i, c := range eligible {
			descriptions[i] = c.Description
		}
		mask := classify.Relevance(ctx, p.classifier, descriptions)
		final = filter.ByMask(eligible, mask)
		slog.Info("relevance filter applied", "in", len(eligible), "out", len(final))
	}

	// Stage 5: hand off to the export collaborator.
	if err := p.exporter.Export(final); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return final, nil
}

// collect obtains one source's records. URLs are tried first, then the local
// fallback file. A source that was reachable but yielded no records falls
// back to the demo dataset with a diagnostic; a source with no successful
// fetch at all is fatal.
func (p *Pipeline) collect(ctx context.Context, src Source) ([]model.Company, error) {
	name := src.Parser.Name()
	if p.opts.UseMock {
		return demo.Companies(name), nil
	}

	var records []model.Company
	var fetchErr error
	fetched := false
	for _, loc := range src.URLs {
		markup, err := p.fetcher.Fetch(ctx, loc)
		if err != nil {
			slog.Warn("fetch failed", "source", name, "location", loc, "error", err)
			fetchErr = err
			continue
		}
		fetched = true
		parsed, err := src.Parser.Parse(ctx, markup)
		if err != nil {
			slog.Warn("parse failed", "source", name, "location", loc, "error", err)
			continue
		}
		records = append(records, parsed...)
	}

	if len(records) == 0 && src.LocalHTML != "" {
		markup, err := p.fetcher.Fetch(ctx, src.LocalHTML)
		if err != nil {
			slog.Warn("local fallback read failed", "source", name, "path", src.LocalHTML, "error", err)
		} else {
			fetched = true
			if parsed, perr := src.Parser.Parse(ctx, markup); perr == nil {
				records = parsed
			}
		}
	}

	if len(records) == 0 {
		if !fetched {
			return nil, fmt.Errorf("source %s unavailable: %w", name, fetchErr)
		}
		slog.Warn("source yielded no records, using demo data", "source", name)
		return demo.Companies(name), nil
	}
	return records, nil
}
