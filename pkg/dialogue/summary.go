package dialogue

import (
	"fmt"
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/dialogue/schema"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// Summary renders a human-readable recap of everything collected so
// far, grouped by section. It is pure and safe to call mid-flow (for
// the confirmation step) or after completion.
func Summary(s Session) string {
	var b strings.Builder
	b.WriteString(summaryHeader(s.Language))
	b.WriteString("\n")

	for _, section := range []schema.Section{schema.SectionIdentity, schema.SectionDescription, schema.SectionLocation} {
		lines := sectionLines(s, section)
		if len(lines) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(sectionTitle(section, s.Language))
		b.WriteString("\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func sectionLines(s Session, section schema.Section) []string {
	var lines []string
	for _, slot := range s.Schema {
		if slot.Section != section {
			continue
		}
		value, ok := s.Collected[slot.Key]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", slot.Label(s.Language), value))
	}
	return lines
}

func summaryHeader(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "هذا ملخص البلاغ:"
	case language.Darija:
		return "hahowa mulakhas dyal l blag:"
	default:
		return "Here is a summary of your report:"
	}
}

func sectionTitle(section schema.Section, lang language.Language) string {
	titles := map[schema.Section]map[language.Language]string{
		schema.SectionIdentity: {
			language.English: "Identity",
			language.Arabic:  "الهوية",
			language.Darija:  "lhawiya",
		},
		schema.SectionDescription: {
			language.English: "Description",
			language.Arabic:  "الوصف",
			language.Darija:  "lwasf",
		},
		schema.SectionLocation: {
			language.English: "Location",
			language.Arabic:  "الموقع",
			language.Darija:  "lblasa",
		},
	}
	if t, ok := titles[section][lang]; ok {
		return t
	}
	return titles[section][language.English]
}
