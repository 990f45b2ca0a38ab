// Package search turns a free-text query into structured search
// parameters and ranks candidate reports against them. It is pure: the
// actual data access lives behind the orchestrator's store interface.
package search

import (
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/gazetteer"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// ParseQuery extracts a category, a city and residual keywords from a
// raw query. Every part is optional; an empty query yields zero-value
// params, which callers treat as "browse everything".
func ParseQuery(query string) lostfound.SearchParams {
	tokens := language.Tokenize(query)

	var params lostfound.SearchParams
	if t, ok := gazetteer.FindCategory(tokens); ok {
		params.Type = t
	}
	if city, ok := gazetteer.FindCity(query); ok {
		params.City = city
	}

	for _, token := range tokens {
		if gazetteer.IsStopword(token) {
			continue
		}
		if gazetteer.IsCity(token) {
			continue
		}
		if _, ok := gazetteer.LookupCategory(token); ok {
			continue
		}
		params.Keywords = append(params.Keywords, token)
	}

	return params
}

// RefineQuery merges a follow-up query into previous params. The
// follow-up wins wherever it names something; keywords accumulate.
func RefineQuery(prev lostfound.SearchParams, followUp string) lostfound.SearchParams {
	next := ParseQuery(followUp)

	if next.Type == "" {
		next.Type = prev.Type
	}
	if next.City == "" {
		next.City = prev.City
	}
	next.Keywords = mergeKeywords(prev.Keywords, next.Keywords)

	return next
}

func mergeKeywords(prev, next []string) []string {
	seen := make(map[string]struct{}, len(prev)+len(next))
	var merged []string
	for _, kw := range append(append([]string{}, prev...), next...) {
		kw = strings.ToLower(kw)
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		merged = append(merged, kw)
	}
	return merged
}
