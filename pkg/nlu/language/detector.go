package language

import (
	"strings"
	"unicode"
)

// Language is one of the dialects the assistant can answer in.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	Darija  Language = "darija" // Moroccan Arabic written in Latin script
)

// Detect classifies text into one of the supported languages.
// Any Arabic-script rune wins immediately; otherwise the text is
// tokenized and checked against the darija lexicon. Ties resolve to
// English so behavior stays predictable. Detect is total: it never
// fails and always returns one of the three labels.
func Detect(text string) Language {
	if containsArabicScript(text) {
		return Arabic
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return English
	}

	matched := 0
	for _, tok := range tokens {
		if _, strong := darijaStrongTokens[tok]; strong {
			return Darija
		}
		if _, ok := darijaTokens[tok]; ok {
			matched++
		}
	}

	// Weak signals only count in aggregate.
	if float64(matched)/float64(len(tokens)) >= darijaRatioThreshold {
		return Darija
	}

	return English
}

// Tokenize lowercases and splits on anything that is not a letter or
// digit. Digits stay inside tokens because darija chat-alphabet spells
// Arabic consonants with 3, 7 and 9 (e.g. "l9it", "3afak").
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsArabicScript(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
