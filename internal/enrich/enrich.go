// Package enrich fills gaps in parsed company records. Round enrichment is a
// deliberately crude mock: an unknown round becomes Seed, a placeholder
// meaning "no round evidence found", never an inference.
package enrich

import (
	"strings"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
)

// Round sets a concrete funding round on a record that has none. Total and
// idempotent: a known round passes through untouched.
func Round(c model.Company) model.Company {
	if c.Round == model.RoundUnknown {
		c.Round = model.RoundSeed
	}
	return c
}

// FillFromLookup backfills Website and Round from a known-company lookup
// (keyed by lowercased name) before the mock default applies.
func FillFromLookup(c model.Company, lookup map[string]model.Company) model.Company {
	known, ok := lookup[strings.ToLower(c.Name)]
	if !ok {
		return c
	}
	if c.Website == "" {
		c.Website = known.Website
	}
	if c.Round == model.RoundUnknown {
		c.Round = known.Round
	}
	return c
}
