// Package setventures parses the SET Ventures portfolio grid. Tiles carry the
// company name in an accessible label and link to a per-company profile page
// on setventures.com; descriptions live on the profile page, not the grid.
package setventures

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source"
)

// SourceName identifies records produced by this parser.
const SourceName = "SET"

func init() {
	source.Register(SourceName, func(f source.Fetcher) source.Parser {
		return New(f)
	})
}

// Parser extracts companies from SET Ventures portfolio markup, following
// each tile's profile link for a description.
type Parser struct {
	fetcher source.Fetcher
}

// New creates a SET Parser. The fetcher loads profile pages; it may be nil,
// in which case descriptions stay empty.
func New(f source.Fetcher) *Parser {
	return &Parser{fetcher: f}
}

func (p *Parser) Name() string { return SourceName }

// minParagraphLen filters boilerplate fragments ("Menu", "Share") when a
// profile page has no meta description.
const minParagraphLen = 20

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	titleCaser   = cases.Title(language.English)
)

// Parse walks the grid tiles in document order. The tile label already
// guarantees a name, so records are emitted even when the profile page
// yields no description.
func (p *Parser) Parse(ctx context.Context, markup string) ([]model.Company, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var companies []model.Company
	doc.Find("a.nectar-post-grid-link").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.AttrOr("aria-label", ""))
		profileURL := strings.TrimSpace(s.AttrOr("href", ""))
		if name == "" || profileURL == "" {
			return
		}
		if name == strings.ToUpper(name) {
			name = titleCaser.String(strings.ToLower(name))
		}

		company := model.Company{
			Name:       name,
			ProfileURL: profileURL,
			Round:      model.RoundUnknown,
			Source:     SourceName,
		}
		p.enrichFromProfile(ctx, &company)
		companies = append(companies, company)
	})
	return companies, nil
}

// enrichFromProfile fills Description (and Website, when an external link is
// present) from the company's profile page. Failures leave the record as-is.
func (p *Parser) enrichFromProfile(ctx context.Context, company *model.Company) {
	if p.fetcher == nil || company.ProfileURL == "" {
		return
	}
	markup, err := p.fetcher.Fetch(ctx, company.ProfileURL)
	if err != nil {
		slog.Warn("profile page fetch failed", "company", company.Name, "url", company.ProfileURL, "error", err)
		return
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		slog.Warn("profile page parse failed", "company", company.Name, "error", err)
		return
	}

	company.Description = extractDescription(doc)
	if company.Website == "" {
		company.Website = firstExternalLink(doc)
	}
}

// extractDescription checks, in priority order: the meta description, the
// Open Graph description, the first non-trivial body paragraph.
func extractDescription(doc *goquery.Document) string {
	if d := strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")); d != "" {
		return d
	}
	if d := strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", "")); d != "" {
		return d
	}
	var paragraph string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(whitespaceRe.ReplaceAllString(s.Text(), " "))
		if len(text) >= minParagraphLen {
			paragraph = text
			return false
		}
		return true
	})
	return paragraph
}

// firstExternalLink returns the first absolute link pointing away from
// setventures.com, typically the company's own site.
func firstExternalLink(doc *goquery.Document) string {
	var link string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := s.AttrOr("href", "")
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return true
		}
		if strings.Contains(href, "setventures.com") {
			return true
		}
		link = href
		return false
	})
	return link
}
