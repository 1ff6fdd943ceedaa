// Package demo holds a small built-in dataset used by --use-mock runs and as
// a last-resort fallback when a portfolio source cannot be scraped.
package demo

import (
	"strings"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
)

// Companies returns the demo records for the given source ("EIP" or "SET"),
// in a fixed order.
func Companies(sourceName string) []model.Company {
	switch sourceName {
	case "EIP":
		return []model.Company{
			{
				Name:        "GridPulse",
				Website:     "https://gridpulse.example.com",
				Description: "Smart grid analytics for utility operators.",
				Round:       model.RoundSeriesA,
				Source:      "EIP",
			},
			{
				Name:        "ThermaLoop",
				Website:     "https://thermaloop.example.com",
				Description: "Industrial efficiency platform reducing heat loss.",
				Round:       model.RoundSeriesC,
				Source:      "EIP",
			},
			{
				Name:        "VoltStor",
				Website:     "https://voltstor.example.com",
				Description: "Long-duration energy storage systems for renewables.",
				Round:       model.RoundSeriesD,
				Source:      "EIP",
			},
		}
	case "SET":
		return []model.Company{
			{
				Name:        "FluxCharge",
				Website:     "https://fluxcharge.example.com",
				Description: "Energy management software for commercial buildings.",
				Round:       model.RoundSeed,
				Source:      "SET",
			},
			{
				Name:        "AeroGrid",
				Website:     "https://aerogrid.example.com",
				Description: "Smart grid optimization for distributed resources.",
				Round:       model.RoundSeriesB,
				Source:      "SET",
			},
			{
				Name:        "SunPeak",
				Website:     "https://sunpeak.example.com",
				Description: "Residential solar financing platform.",
				Round:       model.RoundSeriesD,
				Source:      "SET",
			},
		}
	}
	return nil
}

// Lookup indexes all demo companies by lowercased name, for backfilling
// scraped records that match a known demo entry.
func Lookup() map[string]model.Company {
	lookup := make(map[string]model.Company)
	for _, name := range []string{"EIP", "SET"} {
		for _, c := range Companies(name) {
			lookup[strings.ToLower(c.Name)] = c
		}
	}
	return lookup
}
