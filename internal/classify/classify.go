// Package classify decides which company descriptions are energy-relevant.
// One bulk call covers the whole batch; when the call is disabled or fails,
// filtering degrades to a no-op rather than blocking the run.
package classify

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Classifier judges a batch of descriptions in a single call. The result is
// index-aligned with the input and always the same length.
type Classifier interface {
	ClassifyBulk(ctx context.Context, descriptions []string) ([]bool, error)
}

// Relevance applies the classifier with the degraded-mode policy: a nil
// classifier (disabled by configuration), a failed call, or a malformed
// result all mean every description is treated as relevant. The failure is
// a diagnostic, never a fatal error.
func Relevance(ctx context.Context, c Classifier, descriptions []string) []bool {
	if len(descriptions) == 0 {
		return []bool{}
	}
	if c == nil {
		slog.Warn("relevance classification unavailable, passing all records")
		return allTrue(len(descriptions))
	}
	verdicts, err := c.ClassifyBulk(ctx, descriptions)
	if err != nil {
		slog.Warn("relevance classification failed, passing all records", "error", err)
		return allTrue(len(descriptions))
	}
	if len(verdicts) != len(descriptions) {
		slog.Warn("relevance classification returned wrong length, passing all records",
			"want", len(descriptions), "got", len(verdicts))
		return allTrue(len(descriptions))
	}
	return verdicts
}

func allTrue(n int) []bool {
	verdicts := make([]bool, n)
	for i := range verdicts {
		verdicts[i] = true
	}
	return verdicts
}

// truncateBatch keeps descriptions head-first while the serialized batch
// stays within budget (in characters). Returns the kept prefix length.
// Truncated-away descriptions are classified false by definition.
func truncateBatch(descriptions []string, budget int) int {
	// 2 brackets plus a comma per extra element.
	used := 2
	for i, d := range descriptions {
		encoded, err := json.Marshal(d)
		if err != nil {
			return i
		}
		cost := len(encoded)
		if i > 0 {
			cost++
		}
		if used+cost > budget {
			return i
		}
		used += cost
	}
	return len(descriptions)
}
