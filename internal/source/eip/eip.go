// Package eip parses the Energy Impact Partners portfolio page. Each company
// is an overlay block carrying a free-text description and a sibling link to
// the company's own site; the page exposes no explicit company name, so one
// is derived from the description or the website hostname.
package eip

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/source"
)

// SourceName identifies records produced by this parser.
const SourceName = "EIP"

func init() {
	source.Register(SourceName, func(source.Fetcher) source.Parser {
		return New()
	})
}

// Parser extracts companies from EIP portfolio markup.
type Parser struct{}

// New creates an EIP Parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) Name() string { return SourceName }

// Parse walks the portfolio-item overlay blocks in document order. Entries
// that cannot yield any name are skipped.
func (p *Parser) Parse(_ context.Context, markup string) ([]model.Company, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var companies []model.Company
	doc.Find("div.portfolio-item-overlay").Each(func(_ int, s *goquery.Selection) {
		description := collapseWhitespace(s.Find("div.text").Text())
		website := strings.TrimSpace(s.Find("a.portfolio-site-url").AttrOr("href", ""))
		if description == "" && website == "" {
			return
		}
		name := InferName(description, website)
		if name == "" {
			return
		}
		companies = append(companies, model.Company{
			Name:        name,
			Description: description,
			Website:     website,
			Round:       model.RoundUnknown,
			Source:      SourceName,
		})
	})
	return companies, nil
}

var (
	// "Acme Grid's platform ..." — possessive subject at the start.
	possessiveRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9&.+-]*(?:\s+[A-Z][A-Za-z0-9&.+-]*){0,3})['’]s\b`)
	// "Acme Grid provides ..." — capitalized subject followed by a verb.
	subjectVerbRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&.+-]*(?:\s+[A-Z][A-Za-z0-9&.+-]*){0,3})\s+(?:is|are|provides|develops|builds|offers|delivers|enables)\b`)
	clauseSepRe   = regexp.MustCompile(`[.,;:—–]|\s[-|]\s`)
	whitespaceRe  = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.English)
)

const maxClauseName = 80

// InferName derives a company name when the markup carries none. Precedence
// is policy, not contract: description subject, then the description's
// leading clause, then the website hostname. Empty means the entry has no
// usable name and must be dropped.
func InferName(description, website string) string {
	if description != "" {
		if m := possessiveRe.FindStringSubmatch(description); m != nil {
			return strings.TrimSpace(m[1])
		}
		if m := subjectVerbRe.FindStringSubmatch(description); m != nil {
			return strings.TrimSpace(m[1])
		}
		if clause := leadingClause(description); clause != "" {
			return clause
		}
	}
	return hostnameName(website)
}

// leadingClause returns the first sentence fragment before a separator,
// capped so a run-on description never becomes an absurd name.
func leadingClause(description string) string {
	clause := description
	if loc := clauseSepRe.FindStringIndex(description); loc != nil {
		clause = description[:loc[0]]
	}
	clause = strings.TrimSpace(clause)
	if clause == "" || len(clause) > maxClauseName {
		return ""
	}
	return clause
}

// hostnameName turns "https://www.grid-pulse.io/about" into "Grid Pulse".
func hostnameName(website string) string {
	if website == "" {
		return ""
	}
	parsed, err := url.Parse(website)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if host == "" {
		return ""
	}
	primary := strings.SplitN(host, ".", 2)[0]
	primary = strings.NewReplacer("-", " ", "_", " ").Replace(primary)
	return titleCaser.String(primary)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
