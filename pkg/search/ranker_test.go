package search

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

func report(title, description string, age time.Duration) lostfound.Report {
	return lostfound.Report{
		ID:          uuid.New(),
		Type:        lostfound.TypePet,
		Title:       title,
		Description: description,
		City:        "casablanca",
		Status:      "open",
		CreatedAt:   time.Now().Add(-age),
	}
}

func TestRankOrdersByKeywordHits(t *testing.T) {
	candidates := []lostfound.Report{
		report("Lost cat", "white persian cat", time.Hour),
		report("Golden retriever found", "friendly golden retriever near the park", time.Hour),
		report("Lost dog", "brown labrador", time.Hour),
	}

	params := lostfound.SearchParams{Keywords: []string{"golden", "retriever"}}
	results := Rank(candidates, params)

	if len(results) != 3 {
		t.Fatalf("len = %d, want 3", len(results))
	}
	if results[0].Report.Title != "Golden retriever found" {
		t.Errorf("top result = %q, want the double keyword hit", results[0].Report.Title)
	}
	if results[0].RelevanceScore <= results[1].RelevanceScore {
		t.Errorf("scores not descending: %v then %v", results[0].RelevanceScore, results[1].RelevanceScore)
	}
}

func TestRankNoKeywordsKeepsFloorAndRecency(t *testing.T) {
	older := report("Old report", "", 48*time.Hour)
	newer := report("New report", "", time.Hour)

	results := Rank([]lostfound.Report{older, newer}, lostfound.SearchParams{})

	for _, r := range results {
		if r.RelevanceScore != baseScore {
			t.Errorf("score = %v, want floor %v", r.RelevanceScore, baseScore)
		}
	}
	if results[0].Report.Title != "New report" {
		t.Errorf("tie must break on recency, got %q first", results[0].Report.Title)
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	results := Rank(nil, lostfound.SearchParams{Keywords: []string{"dog"}})
	if len(results) != 0 {
		t.Fatalf("len = %d, want 0", len(results))
	}
}

func TestFormatResultsNeverEmpty(t *testing.T) {
	for _, lang := range []language.Language{language.English, language.Arabic, language.Darija} {
		if FormatResults(nil, 0, lang) == "" {
			t.Errorf("%s: empty no-results message", lang)
		}
	}
}

func TestFormatResultsCapsAtFive(t *testing.T) {
	var results []lostfound.SearchResult
	for i := 0; i < 8; i++ {
		results = append(results, lostfound.SearchResult{
			Report:         report("Report", "details", time.Hour),
			RelevanceScore: 1,
		})
	}

	out := FormatResults(results, len(results), language.English)
	if !containsLine(out, "5. ") {
		t.Error("fifth card missing")
	}
	if containsLine(out, "6. ") {
		t.Error("sixth card should not be listed")
	}
}

func TestFormatResultsHeaderUsesFullTotal(t *testing.T) {
	var results []lostfound.SearchResult
	for i := 0; i < 8; i++ {
		results = append(results, lostfound.SearchResult{
			Report:         report("Report", "details", time.Hour),
			RelevanceScore: 1,
		})
	}

	// 8 results on the page, 73 matches overall.
	out := FormatResults(results, 73, language.English)
	if !strings.Contains(out, "I found 73 matching reports:") {
		t.Errorf("header does not report full total: %q", out)
	}
	if !strings.Contains(out, "...and 68 more.") {
		t.Errorf("remainder does not use full total: %q", out)
	}
}

func containsLine(s, prefix string) bool {
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
