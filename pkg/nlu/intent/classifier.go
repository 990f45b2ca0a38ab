// Package intent maps normalized free text to one of the assistant's
// coarse goals. Classification is ordered predicate rules over tokens
// plus the gazetteer; there is no statistical model, so every outcome
// is reproducible in a table test.
package intent

import (
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/gazetteer"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// Intent is the caller's coarse-grained goal for a turn. Cancellation
// is intentionally absent: the orchestrator handles it before the
// classifier ever runs, because it must interrupt active sessions.
type Intent string

const (
	CreateReport  Intent = "create_report"
	SearchReports Intent = "search_reports"
	CheckStatus   Intent = "check_status"
	PlatformHelp  Intent = "platform_help"
)

// Entities are the structured values extracted alongside the intent.
type Entities struct {
	ReportType lostfound.ReportType `json:"report_type,omitempty"`
	City       string               `json:"city,omitempty"`
	Keywords   []string             `json:"keywords,omitempty"`
}

// Result is produced fresh per turn and never persisted.
type Result struct {
	Intent     Intent   `json:"intent"`
	Confidence float32  `json:"confidence"`
	Entities   Entities `json:"entities"`
}

// Confidence is deterministic: a base per matched rule plus a bump per
// extracted entity. It feeds logging only and never gates behavior.
const (
	confidenceFloor  float32 = 0.3
	confidenceRule   float32 = 0.6
	confidenceEntity float32 = 0.15
	confidenceMax    float32 = 1.0
)

// Classify evaluates the priority rules in order and short-circuits on
// the first match: creation cues, then search cues or a bare city,
// then status cues, then the help fallback.
func Classify(text string, lang language.Language) Result {
	tokens := language.Tokenize(text)

	if gazetteer.HasCreateCue(text, tokens) {
		entities := Entities{}
		score := confidenceRule
		if t, ok := gazetteer.FindCategory(tokens); ok {
			entities.ReportType = t
			score += confidenceEntity
		}
		if city, ok := gazetteer.FindCity(text); ok {
			entities.City = city
			score += confidenceEntity
		}
		return Result{Intent: CreateReport, Confidence: clamp(score), Entities: entities}
	}

	if gazetteer.HasSearchCue(text, tokens) || hasCityToken(tokens, text) {
		entities := Entities{Keywords: residualKeywords(tokens)}
		score := confidenceRule
		if t, ok := gazetteer.FindCategory(tokens); ok {
			entities.ReportType = t
			score += confidenceEntity
		}
		if city, ok := gazetteer.FindCity(text); ok {
			entities.City = city
			score += confidenceEntity
		}
		return Result{Intent: SearchReports, Confidence: clamp(score), Entities: entities}
	}

	if gazetteer.HasStatusCue(text, tokens) {
		return Result{Intent: CheckStatus, Confidence: confidenceRule}
	}

	return Result{Intent: PlatformHelp, Confidence: confidenceFloor}
}

// hasCityToken checks for a city mention strong enough to imply a
// search on its own ("casablanca?").
func hasCityToken(tokens []string, text string) bool {
	for _, tok := range tokens {
		if gazetteer.IsCity(tok) {
			return true
		}
	}
	_, ok := gazetteer.FindCity(text)
	return ok
}

// residualKeywords drops stopwords, category nouns and city names and
// keeps the rest as search keywords.
func residualKeywords(tokens []string) []string {
	keywords := []string{}
	for _, tok := range tokens {
		if gazetteer.IsStopword(tok) || gazetteer.IsCity(tok) {
			continue
		}
		if _, ok := gazetteer.LookupCategory(tok); ok {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}

func clamp(v float32) float32 {
	if v > confidenceMax {
		return confidenceMax
	}
	return v
}
