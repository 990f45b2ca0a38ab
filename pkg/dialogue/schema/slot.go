package schema

import (
	"errors"
	"strconv"
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// Kind selects the validation rule for a slot answer.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindEnum   Kind = "enum"
)

// Section groups slots for the report summary.
type Section string

const (
	SectionIdentity    Section = "identity"
	SectionDescription Section = "description"
	SectionLocation    Section = "location"
)

// SlotDefinition is one question the dialogue asks for a category.
// Definitions are static data owned by this package; the engine only
// reads them.
type SlotDefinition struct {
	Key          string                         `json:"key"`
	Kind         Kind                           `json:"kind"`
	Section      Section                        `json:"section"`
	Required     bool                           `json:"required"`
	Prompts      map[language.Language]string   `json:"prompts"`
	Hints        map[language.Language]string   `json:"hints"`
	Labels       map[language.Language]string   `json:"labels"`
	Enum         []string                       `json:"enum,omitempty"`
	QuickReplies []string                       `json:"quick_replies,omitempty"`
}

// Prompt returns the slot question in the requested language, falling
// back to English for any gap in the table.
func (s SlotDefinition) Prompt(lang language.Language) string {
	if p, ok := s.Prompts[lang]; ok {
		return p
	}
	return s.Prompts[language.English]
}

// Hint returns the validation feedback shown on an invalid answer.
func (s SlotDefinition) Hint(lang language.Language) string {
	if h, ok := s.Hints[lang]; ok {
		return h
	}
	return s.Hints[language.English]
}

// Label returns the short field name used in summaries.
func (s SlotDefinition) Label(lang language.Language) string {
	if l, ok := s.Labels[lang]; ok {
		return l
	}
	return s.Labels[language.English]
}

var ErrEmptyAnswer = errors.New("answer is empty")
var ErrNotANumber = errors.New("answer is not a number")
var ErrNotInEnum = errors.New("answer is not one of the allowed values")

// Validate checks a raw answer against the slot's rule. The answer is
// trimmed first; enum membership is case-insensitive.
func (s SlotDefinition) Validate(raw string) error {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return ErrEmptyAnswer
	}

	switch s.Kind {
	case KindNumber:
		n, err := strconv.Atoi(answer)
		if err != nil || n < 0 || n > 150 {
			return ErrNotANumber
		}
	case KindEnum:
		lower := strings.ToLower(answer)
		for _, v := range s.Enum {
			if lower == v {
				return nil
			}
		}
		return ErrNotInEnum
	}

	return nil
}
