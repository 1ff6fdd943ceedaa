// Package filter holds the pure record-filtering passes: the early-stage
// round allowlist and index-mask application for relevance results.
package filter

import "github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"

// AllowedRound reports whether a funding round is early-stage enough to keep.
// Seed through Series C pass; Series D, IPO, and Public are blocked, as is
// anything that never got a concrete round.
func AllowedRound(r model.Round) bool {
	switch r {
	case model.RoundSeed, model.RoundSeriesA, model.RoundSeriesB, model.RoundSeriesC:
		return true
	default:
		return false
	}
}

// ByRound returns the stable-order sublist of companies with an allowed round.
func ByRound(companies []model.Company) []model.Company {
	var kept []model.Company
	for _, c := range companies {
		if AllowedRound(c.Round) {
			kept = append(kept, c)
		}
	}
	return kept
}

// ByMask returns the stable-order sublist of companies whose index is true in
// the mask. The mask must be index-aligned with companies.
func ByMask(companies []model.Company, mask []bool) []model.Company {
	var kept []model.Company
	for i, c := range companies {
		if i < len(mask) && mask[i] {
			kept = append(kept, c)
		}
	}
	return kept
}
