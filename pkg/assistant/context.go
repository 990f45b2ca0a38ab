// Package assistant is the conversation orchestrator: it routes each
// incoming message to the language detector, the intent classifier,
// the report dialogue or the search pipeline, and builds the reply.
// All conversation state lives in an opaque Context the caller
// persists between turns; the orchestrator itself is stateless.
package assistant

import (
	"github.com/maatalaayoub/L9ani-sub001/pkg/dialogue"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// Mode names the active flow.
type Mode string

const (
	ModeIdle   Mode = ""
	ModeReport Mode = "report_creation"
	ModeSearch Mode = "search"
)

// Context is the serializable conversation state. Callers treat it as
// opaque: marshal it after every turn, send it back unchanged on the
// next one. A tampered or truncated context is detected and recovered
// from, never trusted.
type Context struct {
	Mode     Mode              `json:"mode"`
	Language language.Language `json:"language,omitempty"`
	Report   *dialogue.Session `json:"report,omitempty"`
	Search   *SearchContext    `json:"search,omitempty"`
}

// SearchContext carries the previous query so a follow-up message can
// refine it instead of starting over.
type SearchContext struct {
	LastQuery   string                 `json:"last_query"`
	LastParams  lostfound.SearchParams `json:"last_params"`
	ResultCount int                    `json:"result_count"`
}

// reset returns the context to the idle state, keeping only the
// conversation language.
func (c Context) reset() Context {
	return Context{Language: c.Language}
}

// sound reports whether the context is internally consistent. The mode
// and its payload must agree; a report session must also pass its own
// shape check.
func (c Context) sound() bool {
	switch c.Mode {
	case ModeIdle:
		return true
	case ModeReport:
		return c.Report != nil && c.Report.Shape()
	case ModeSearch:
		return c.Search != nil
	}
	return false
}
