package dialogue

import (
	"github.com/maatalaayoub/L9ani-sub001/pkg/dialogue/schema"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// Session is the complete dialogue state for one report in progress.
// It is a value: transition functions return a new session and never
// mutate their input, so a caller can serialize it after every turn
// and rehydrate it later with identical behavior. There is no hidden
// engine-side state.
type Session struct {
	ReportType lostfound.ReportType    `json:"report_type"`
	Language   language.Language       `json:"language"`
	Schema     []schema.SlotDefinition `json:"schema"`
	Collected  map[string]string       `json:"collected_data"`
	SlotIndex  int                     `json:"current_slot_index"`
	Complete   bool                    `json:"is_complete"`
	Progress   string                  `json:"progress"`
}

// CurrentSlot returns the slot the session is waiting on.
func (s Session) CurrentSlot() (schema.SlotDefinition, bool) {
	if s.SlotIndex < 0 || s.SlotIndex >= len(s.Schema) {
		return schema.SlotDefinition{}, false
	}
	return s.Schema[s.SlotIndex], true
}

// RequiredFilled reports whether every required slot has an answer.
func (s Session) RequiredFilled() bool {
	for _, slot := range s.Schema {
		if slot.Required {
			if _, ok := s.Collected[slot.Key]; !ok {
				return false
			}
		}
	}
	return true
}

// Shape checks that a rehydrated session is structurally sound. A
// tampered or truncated context fails here instead of panicking later.
func (s Session) Shape() bool {
	if !s.ReportType.Valid() || len(s.Schema) == 0 {
		return false
	}
	if s.SlotIndex < 0 || s.SlotIndex > len(s.Schema) {
		return false
	}
	return true
}

// withAnswer returns a copy of the session with one more answer
// stored. The collected map is cloned so the original stays untouched.
func (s Session) withAnswer(key, value string) Session {
	collected := make(map[string]string, len(s.Collected)+1)
	for k, v := range s.Collected {
		collected[k] = v
	}
	collected[key] = value
	s.Collected = collected
	return s
}

func (s Session) answeredRequired() int {
	n := 0
	for _, slot := range s.Schema {
		if slot.Required {
			if _, ok := s.Collected[slot.Key]; ok {
				n++
			}
		}
	}
	return n
}
