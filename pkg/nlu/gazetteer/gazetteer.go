// Package gazetteer holds the closed lexicons the rule-based NLU works
// from: report-category nouns, the Moroccan city list, stopwords and
// cancellation phrases, each covering English, Arabic and darija.
// The tables are data, not code; adding a synonym or a language is
// additive and never touches the classifiers.
package gazetteer

import (
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// LookupCategory returns the report type a single token refers to.
func LookupCategory(token string) (lostfound.ReportType, bool) {
	t, ok := categoryNouns[strings.ToLower(token)]
	return t, ok
}

// FindCategory scans tokenized text for the first category noun.
func FindCategory(tokens []string) (lostfound.ReportType, bool) {
	for _, tok := range tokens {
		if t, ok := LookupCategory(tok); ok {
			return t, true
		}
	}
	return "", false
}

// FindCity matches the known city list against the text. Matching is a
// case-insensitive substring check so multi-word names ("el jadida")
// and Arabic-script names both work. The canonical (Latin, lowercase)
// name is returned.
func FindCity(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range cities {
		for _, alias := range c.aliases {
			if strings.Contains(lower, alias) {
				return c.canonical, true
			}
		}
	}
	return "", false
}

// IsCity reports whether a single token is a city name on its own.
func IsCity(token string) bool {
	lower := strings.ToLower(token)
	for _, c := range cities {
		for _, alias := range c.aliases {
			if alias == lower {
				return true
			}
		}
	}
	return false
}

// IsStopword reports whether the token carries no search value in any
// supported language.
func IsStopword(token string) bool {
	_, ok := stopwords[strings.ToLower(token)]
	return ok
}

// IsCancellation reports whether the message asks to abandon the
// current flow. All language sets are checked regardless of the
// detected language; a user mid-flow may switch languages to escape.
// Single-word keywords match at token level so "cancel this" escapes
// too; multi-word phrases match anywhere in the message.
func IsCancellation(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}
	tokens := language.Tokenize(lower)
	for _, phrase := range cancellationPhrases {
		if strings.Contains(phrase, " ") {
			if strings.Contains(lower, phrase) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == phrase {
				return true
			}
		}
	}
	return false
}

// HasCreateCue reports whether the text contains a report-creation cue.
func HasCreateCue(text string, tokens []string) bool {
	return hasCue(text, tokens, createCueTokens, createCuePhrases)
}

// HasSearchCue reports whether the text contains a search cue.
func HasSearchCue(text string, tokens []string) bool {
	return hasCue(text, tokens, searchCueTokens, searchCuePhrases)
}

// HasStatusCue reports whether the text asks about the user's own reports.
func HasStatusCue(text string, tokens []string) bool {
	return hasCue(text, tokens, statusCueTokens, statusCuePhrases)
}

// IsGreeting reports whether the whole message is a bare greeting.
func IsGreeting(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	lower = strings.Trim(lower, "!.?؟ ")
	_, ok := greetings[lower]
	return ok
}

func hasCue(text string, tokens []string, tokenSet map[string]struct{}, phrases []string) bool {
	for _, tok := range tokens {
		if _, ok := tokenSet[tok]; ok {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// StopwordsFor exposes the per-language stopword slices, mainly so
// tests and tooling can see what a language filters out.
func StopwordsFor(lang language.Language) []string {
	var out []string
	for tok, l := range stopwordLang {
		if l == lang {
			out = append(out, tok)
		}
	}
	return out
}
