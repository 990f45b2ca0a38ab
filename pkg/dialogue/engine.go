// Package dialogue drives the slot-filling conversation that turns a
// noisy chat into a structured report draft. The engine is a set of
// pure transition functions over immutable Session values; callers
// persist the session between turns and replace it wholesale.
package dialogue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/pkg/dialogue/schema"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// Control signals a client can send instead of a slot answer.
const (
	SkipSignal     = "__SKIP_OPTIONAL__"
	CompleteSignal = "__COMPLETE__"
)

var ErrCorruptedSession = errors.New("session shape is corrupted")

// StepResult is what the orchestrator turns into the visible reply.
type StepResult struct {
	Prompt       string   `json:"prompt"`
	Hint         string   `json:"hint,omitempty"`
	QuickReplies []string `json:"quick_replies,omitempty"`
	Progress     string   `json:"progress"`
	Invalid      bool     `json:"invalid"`
	Completed    bool     `json:"completed"`
	Summary      string   `json:"summary,omitempty"`
}

// InitSession validates the category against the registry and returns
// a fresh session positioned on the first slot, together with the
// first prompt.
func InitSession(reportType lostfound.ReportType, lang language.Language) (Session, StepResult, error) {
	slots, err := schema.Get(reportType)
	if err != nil {
		return Session{}, StepResult{}, err
	}

	s := Session{
		ReportType: reportType,
		Language:   lang,
		Schema:     slots,
		Collected:  map[string]string{},
		SlotIndex:  0,
	}
	s.Progress = progress(s)

	return s, promptFor(s), nil
}

// ProcessAnswer advances the session by one turn. Invalid answers
// re-emit the same slot's prompt with a hint; the index never moves on
// invalid input and never retreats. A structurally broken session is
// fatal for the turn and reported as ErrCorruptedSession.
func ProcessAnswer(prev Session, raw string) (Session, StepResult, error) {
	if !prev.Shape() {
		return prev, StepResult{}, ErrCorruptedSession
	}
	if prev.Complete {
		// Terminal session: nothing to advance, re-emit the summary.
		return prev, completedResult(prev), nil
	}

	slot, ok := prev.CurrentSlot()
	if !ok {
		return finalize(prev), completedResult(finalize(prev)), nil
	}

	switch raw {
	case CompleteSignal:
		if !prev.RequiredFilled() {
			res := promptFor(prev)
			res.Invalid = true
			res.Hint = requiredLeftHint(prev.Language)
			return prev, res, nil
		}
		next := finalize(prev)
		return next, completedResult(next), nil

	case SkipSignal:
		if slot.Required {
			res := promptFor(prev)
			res.Invalid = true
			res.Hint = requiredSkipHint(prev.Language)
			return prev, res, nil
		}
		next := advance(prev)
		if next.Complete {
			return next, completedResult(next), nil
		}
		return next, promptFor(next), nil
	}

	if err := slot.Validate(raw); err != nil {
		res := promptFor(prev)
		res.Invalid = true
		res.Hint = slot.Hint(prev.Language)
		return prev, res, nil
	}

	next := advance(prev.withAnswer(slot.Key, normalizeAnswer(slot, raw)))
	if next.Complete {
		return next, completedResult(next), nil
	}
	return next, promptFor(next), nil
}

// advance moves to the next slot and recomputes progress; exhausting
// the schema finalizes the session.
func advance(s Session) Session {
	s.SlotIndex++
	s.Progress = progress(s)
	if s.SlotIndex >= len(s.Schema) {
		return finalize(s)
	}
	return s
}

func finalize(s Session) Session {
	s.Complete = true
	s.SlotIndex = len(s.Schema)
	s.Progress = progress(s)
	return s
}

func progress(s Session) string {
	return fmt.Sprintf("%d/%d", s.answeredRequired(), schema.RequiredCount(s.Schema))
}

func promptFor(s Session) StepResult {
	slot, ok := s.CurrentSlot()
	if !ok {
		return completedResult(s)
	}

	quickReplies := append([]string{}, slot.QuickReplies...)
	if !slot.Required {
		quickReplies = append(quickReplies, SkipSignal)
	}
	if s.RequiredFilled() {
		// Early termination is only offered once nothing required is left.
		quickReplies = append(quickReplies, CompleteSignal)
	}

	return StepResult{
		Prompt:       slot.Prompt(s.Language),
		QuickReplies: quickReplies,
		Progress:     s.Progress,
	}
}

func completedResult(s Session) StepResult {
	return StepResult{
		Completed: true,
		Progress:  s.Progress,
		Summary:   Summary(s),
	}
}

func normalizeAnswer(slot schema.SlotDefinition, raw string) string {
	answer := strings.TrimSpace(raw)
	if slot.Kind == schema.KindEnum {
		return strings.ToLower(answer)
	}
	return answer
}

func requiredSkipHint(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "هذا الحقل مطلوب ولا يمكن تخطيه."
	case language.Darija:
		return "had l khana darorya, ma ymkench tfouteha."
	default:
		return "This field is required and cannot be skipped."
	}
}

func requiredLeftHint(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "لا تزال هناك حقول مطلوبة."
	case language.Darija:
		return "mazal kaynin chi khanat daroryin."
	default:
		return "Some required fields are still missing."
	}
}
