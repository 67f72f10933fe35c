package ai

import (
	"fmt"
	"sort"

	"sellquick/internal/model"
)

const (
	fallbackTrustScore   = 75
	fallbackMatchLimit   = 3
	fallbackDetailPrefix = 100
)

// FallbackAnalysis is the deterministic substitute for a failed analysis
// call. The budget tier is always Medium and the trust score is always 75.
func FallbackAnalysis(name, details string) Analysis {
	prefix := details
	if len(prefix) > fallbackDetailPrefix {
		prefix = prefix[:fallbackDetailPrefix]
	}
	return Analysis{
		Category:    "General",
		MicroNiche:  "General Service",
		BudgetRange: model.BudgetMedium,
		Analysis:    fmt.Sprintf("Automatic assessment for %s: %s...", name, prefix),
		TrustScore:  fallbackTrustScore,
	}
}

// FallbackCuration is the deterministic substitute for a failed curation
// call: the candidates sorted by verification tier descending, capped at
// three. The sort is stable, so equal tiers keep their original relative
// order. The query is ignored.
func FallbackCuration(candidates []Candidate) Curation {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tier > sorted[j].Tier
	})
	if len(sorted) > fallbackMatchLimit {
		sorted = sorted[:fallbackMatchLimit]
	}

	ids := make([]string, 0, len(sorted))
	for _, c := range sorted {
		ids = append(ids, c.ID)
	}
	return Curation{
		MatchedIDs: ids,
		Rationale:  fmt.Sprintf("Selected top %d providers by verification level.", len(ids)),
	}
}
