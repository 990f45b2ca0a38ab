package search

import (
	"sort"
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
)

const baseScore float32 = 0.1

// Rank scores candidates against the parsed keywords and orders them
// best-first. Scoring is a flat count: each keyword found anywhere in
// the title or description adds one point, and every candidate keeps a
// small floor score so that a category-and-city-only query still
// returns results in a stable order. Ties break on recency.
func Rank(candidates []lostfound.Report, params lostfound.SearchParams) []lostfound.SearchResult {
	results := make([]lostfound.SearchResult, 0, len(candidates))
	for _, report := range candidates {
		results = append(results, lostfound.SearchResult{
			Report:         report,
			RelevanceScore: score(report, params.Keywords),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].Report.CreatedAt.After(results[j].Report.CreatedAt)
	})

	return results
}

func score(report lostfound.Report, keywords []string) float32 {
	s := baseScore
	haystack := strings.ToLower(report.Title + " " + report.Description)
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			s += 1.0
		}
	}
	return s
}
