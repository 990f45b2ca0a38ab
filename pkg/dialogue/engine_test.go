package dialogue

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/maatalaayoub/L9ani-sub001/pkg/dialogue/schema"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// validAnswerFor produces a syntactically valid answer for any slot.
func validAnswerFor(slot schema.SlotDefinition) string {
	switch slot.Kind {
	case schema.KindEnum:
		return slot.Enum[0]
	case schema.KindNumber:
		return "30"
	default:
		return "test value"
	}
}

func TestInitSessionUnknownType(t *testing.T) {
	_, _, err := InitSession("spaceship", language.English)
	if err == nil {
		t.Fatal("expected error for unknown report type")
	}
}

func TestInitSessionFirstPrompt(t *testing.T) {
	s, res, err := InitSession(lostfound.TypePet, language.English)
	if err != nil {
		t.Fatalf("InitSession: %v", err)
	}
	if s.SlotIndex != 0 {
		t.Errorf("SlotIndex = %d, want 0", s.SlotIndex)
	}
	if s.Schema[0].Key != "petName" {
		t.Errorf("first slot = %q, want petName", s.Schema[0].Key)
	}
	if res.Prompt == "" {
		t.Error("first prompt is empty")
	}
}

func TestAllCategoriesCompleteInRequiredTurns(t *testing.T) {
	for _, reportType := range lostfound.AllTypes() {
		t.Run(string(reportType), func(t *testing.T) {
			s, _, err := InitSession(reportType, language.English)
			if err != nil {
				t.Fatalf("InitSession: %v", err)
			}

			answered := 0
			for !s.Complete {
				slot, ok := s.CurrentSlot()
				if !ok {
					t.Fatal("no current slot on incomplete session")
				}

				var res StepResult
				if slot.Required {
					s, res, err = ProcessAnswer(s, validAnswerFor(slot))
					answered++
				} else {
					s, res, err = ProcessAnswer(s, SkipSignal)
				}
				if err != nil {
					t.Fatalf("ProcessAnswer: %v", err)
				}
				if res.Invalid {
					t.Fatalf("unexpected invalid result at slot %q", slot.Key)
				}
			}

			required := schema.RequiredCount(s.Schema)
			if answered != required {
				t.Errorf("answered %d value turns, want %d (required slots)", answered, required)
			}
			for _, slot := range s.Schema {
				if slot.Required {
					if _, ok := s.Collected[slot.Key]; !ok {
						t.Errorf("required key %q missing from collected data", slot.Key)
					}
				}
			}
			if !strings.Contains(s.Progress, "/") {
				t.Errorf("progress %q not in answered/total form", s.Progress)
			}
		})
	}
}

func TestInvalidAnswerDoesNotAdvance(t *testing.T) {
	s, first, err := InitSession(lostfound.TypePerson, language.English)
	if err != nil {
		t.Fatalf("InitSession: %v", err)
	}

	for i := 0; i < 3; i++ {
		next, res, err := ProcessAnswer(s, "   ")
		if err != nil {
			t.Fatalf("ProcessAnswer: %v", err)
		}
		if !res.Invalid {
			t.Fatal("expected invalid result for empty answer")
		}
		if res.Hint == "" {
			t.Error("invalid result carries no hint")
		}
		if next.SlotIndex != s.SlotIndex {
			t.Fatalf("SlotIndex moved on invalid input: %d -> %d", s.SlotIndex, next.SlotIndex)
		}
		if res.Prompt != first.Prompt {
			t.Errorf("re-prompt = %q, want original %q", res.Prompt, first.Prompt)
		}
		s = next
	}
}

func TestSkipRejectedOnRequiredSlot(t *testing.T) {
	s, _, _ := InitSession(lostfound.TypeVehicle, language.English)
	next, res, err := ProcessAnswer(s, SkipSignal)
	if err != nil {
		t.Fatalf("ProcessAnswer: %v", err)
	}
	if !res.Invalid {
		t.Fatal("skipping a required slot must be rejected")
	}
	if next.SlotIndex != 0 {
		t.Errorf("SlotIndex = %d, want 0", next.SlotIndex)
	}
}

func TestEnumValidation(t *testing.T) {
	s, _, _ := InitSession(lostfound.TypePet, language.English)
	s, _, _ = ProcessAnswer(s, "Rex") // petName

	// petType is an enum slot.
	_, res, err := ProcessAnswer(s, "dinosaur")
	if err != nil {
		t.Fatalf("ProcessAnswer: %v", err)
	}
	if !res.Invalid {
		t.Fatal("enum slot accepted an out-of-set value")
	}

	next, res, err := ProcessAnswer(s, "DOG")
	if err != nil {
		t.Fatalf("ProcessAnswer: %v", err)
	}
	if res.Invalid {
		t.Fatal("enum membership should be case-insensitive")
	}
	if next.Collected["petType"] != "dog" {
		t.Errorf("stored value = %q, want normalized %q", next.Collected["petType"], "dog")
	}
}

func TestCompleteSignalOnlyAfterRequired(t *testing.T) {
	s, _, _ := InitSession(lostfound.TypeOther, language.English)

	// Required itemName not yet answered: early completion refused.
	_, res, err := ProcessAnswer(s, CompleteSignal)
	if err != nil {
		t.Fatalf("ProcessAnswer: %v", err)
	}
	if !res.Invalid {
		t.Fatal("complete signal accepted with required slots unfilled")
	}

	s, _, _ = ProcessAnswer(s, "blue umbrella") // itemName
	s, _, _ = ProcessAnswer(s, SkipSignal)      // description
	s, _, _ = ProcessAnswer(s, "rabat")         // city

	// All required filled; current slot is optional. Terminate early.
	s, res, err = ProcessAnswer(s, CompleteSignal)
	if err != nil {
		t.Fatalf("ProcessAnswer: %v", err)
	}
	if !s.Complete || !res.Completed {
		t.Fatal("complete signal ignored after all required slots filled")
	}
	if res.Summary == "" {
		t.Error("completion carries no summary")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s, _, _ := InitSession(lostfound.TypeElectronics, language.Darija)
	s, _, _ = ProcessAnswer(s, "phone")
	s, _, _ = ProcessAnswer(s, "Samsung")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var rehydrated Session
	if err := json.Unmarshal(data, &rehydrated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	_, wantRes, err := ProcessAnswer(s, "S21")
	if err != nil {
		t.Fatalf("ProcessAnswer original: %v", err)
	}
	_, gotRes, err := ProcessAnswer(rehydrated, "S21")
	if err != nil {
		t.Fatalf("ProcessAnswer rehydrated: %v", err)
	}

	if gotRes.Prompt != wantRes.Prompt || gotRes.Progress != wantRes.Progress {
		t.Errorf("rehydrated session diverged: got %+v, want %+v", gotRes, wantRes)
	}
}

func TestCorruptedSessionIsFatal(t *testing.T) {
	s := Session{ReportType: "nonsense", SlotIndex: -4}
	_, _, err := ProcessAnswer(s, "anything")
	if err == nil {
		t.Fatal("expected corrupted session error")
	}
}

func TestSummaryGroupsSections(t *testing.T) {
	s, _, _ := InitSession(lostfound.TypePerson, language.English)
	s, _, _ = ProcessAnswer(s, "Amine")
	s, _, _ = ProcessAnswer(s, "Benali")

	summary := Summary(s)
	if !strings.Contains(summary, "Identity") {
		t.Errorf("summary missing identity section: %q", summary)
	}
	if !strings.Contains(summary, "Amine") || !strings.Contains(summary, "Benali") {
		t.Errorf("summary missing collected values: %q", summary)
	}
}
