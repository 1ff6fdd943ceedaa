package model

import "strings"

// Round is a company's last known funding stage.
type Round int

const (
	RoundUnknown Round = iota
	RoundSeed
	RoundSeriesA
	RoundSeriesB
	RoundSeriesC
	RoundSeriesD
	RoundIPO
	RoundPublic
)

var roundNames = map[Round]string{
	RoundUnknown: "Unknown",
	RoundSeed:    "Seed",
	RoundSeriesA: "Series A",
	RoundSeriesB: "Series B",
	RoundSeriesC: "Series C",
	RoundSeriesD: "Series D",
	RoundIPO:     "IPO",
	RoundPublic:  "Public",
}

// String returns the display form used in CSV output ("Series A", "IPO", ...).
func (r Round) String() string {
	if name, ok := roundNames[r]; ok {
		return name
	}
	return "Unknown"
}

// ParseRound converts a display form back to a Round.
// Unrecognized strings map to RoundUnknown.
func ParseRound(s string) Round {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for r, name := range roundNames {
		if strings.ToLower(name) == normalized {
			return r
		}
	}
	return RoundUnknown
}

// Company is the normalized portfolio record flowing through the pipeline.
// Parsers create it, enrichment sets Round exactly once, every later stage
// only reads it.
type Company struct {
	Name        string
	Description string
	Website     string
	ProfileURL  string // SET only: the VC profile page the grid tile links to
	Round       Round
	Source      string // producing parser ("EIP" or "SET"), diagnostics only
}
