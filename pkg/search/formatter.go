package search

import (
	"fmt"
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// maxDisplayed caps how many results the chat reply lists; the full
// set stays available through the search endpoint.
const maxDisplayed = 5

// FormatResults renders ranked results as a chat message in the
// conversation language. The total is the full match count, which can
// exceed the page of results passed in; the header and the "and N
// more" line use it. An empty result set still produces a helpful,
// non-empty reply.
func FormatResults(results []lostfound.SearchResult, total int, lang language.Language) string {
	if len(results) == 0 {
		return noResultsMessage(lang)
	}
	if total < len(results) {
		total = len(results)
	}

	var b strings.Builder
	b.WriteString(headerMessage(total, lang))
	b.WriteString("\n")

	shown := results
	if len(shown) > maxDisplayed {
		shown = shown[:maxDisplayed]
	}
	for i, result := range shown {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. %s", i+1, card(result.Report)))
	}
	if total > len(shown) {
		b.WriteString("\n\n")
		b.WriteString(moreMessage(total-len(shown), lang))
	}

	return b.String()
}

func card(report lostfound.Report) string {
	line := report.Title
	if report.City != "" {
		line += " (" + report.City + ")"
	}
	if report.Description != "" {
		desc := []rune(report.Description)
		if len(desc) > 120 {
			desc = append(desc[:117], []rune("...")...)
		}
		line += "\n   " + string(desc)
	}
	return line
}

func headerMessage(count int, lang language.Language) string {
	switch lang {
	case language.Arabic:
		return fmt.Sprintf("وجدت %d نتيجة:", count)
	case language.Darija:
		return fmt.Sprintf("l9it %d dyal nata2ij:", count)
	default:
		if count == 1 {
			return "I found 1 matching report:"
		}
		return fmt.Sprintf("I found %d matching reports:", count)
	}
}

func moreMessage(remaining int, lang language.Language) string {
	switch lang {
	case language.Arabic:
		return fmt.Sprintf("وهناك %d نتيجة أخرى.", remaining)
	case language.Darija:
		return fmt.Sprintf("w kaynin %d khrin.", remaining)
	default:
		return fmt.Sprintf("...and %d more.", remaining)
	}
}

func noResultsMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "لم أجد أي نتيجة مطابقة. جرب كلمات أخرى أو مدينة أخرى."
	case language.Darija:
		return "ma l9it walo. jereb klmat khrin wla mdina khra."
	default:
		return "I could not find any matching reports. Try different keywords or another city."
	}
}
