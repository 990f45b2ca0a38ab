package assistant

import (
	"context"

	"github.com/google/uuid"

	"github.com/maatalaayoub/L9ani-sub001/pkg/dialogue"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/gazetteer"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/intent"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
	"github.com/maatalaayoub/L9ani-sub001/pkg/search"
)

// ReportStore is the read-side the orchestrator needs: candidate
// retrieval for search and the caller's own reports for status checks.
// The database-backed implementation lives in the service layer.
type ReportStore interface {
	Search(ctx context.Context, params lostfound.SearchParams) ([]lostfound.Report, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]lostfound.Report, error)
}

// Turn is one incoming message, either free text or a tapped quick
// reply, with the caller's identity when they are signed in.
type Turn struct {
	Message    string
	QuickReply *QuickReplyInput
	UserID     *uuid.UUID
}

// Orchestrator routes turns. It holds no conversation state of its
// own; everything lives in the Context values it receives and returns.
type Orchestrator struct {
	store ReportStore
}

func NewOrchestrator(store ReportStore) *Orchestrator {
	return &Orchestrator{store: store}
}

// HandleTurn runs one conversation step and returns the next context
// alongside the reply. A store failure keeps the incoming context so
// the user can simply retry; a corrupted context resets to idle with
// an apology rather than erroring out. The returned error is reserved
// for programming mistakes, not user input.
func (o *Orchestrator) HandleTurn(ctx context.Context, state Context, turn Turn) (Context, Response, error) {
	if !state.sound() {
		next := state.reset()
		return next, withMenu(restartMessage(next.lang()), next.lang()), nil
	}

	if turn.QuickReply != nil {
		return o.handleQuickReply(ctx, state, turn)
	}

	lang := language.Detect(turn.Message)
	if state.Mode == ModeReport {
		// Mid-report the session language is authoritative.
		lang = state.Report.Language
	}
	state.Language = lang

	// Cancellation interrupts everything, in every language.
	if gazetteer.IsCancellation(turn.Message) {
		next := state.reset()
		return next, withMenu(cancellationMessage(lang), lang), nil
	}

	switch state.Mode {
	case ModeReport:
		return o.continueReport(state, turn.Message)
	case ModeSearch:
		params := search.RefineQuery(state.Search.LastParams, turn.Message)
		next, resp, err := o.runSearch(ctx, state, turn.Message, params)
		resp.Intent = string(intent.SearchReports)
		return next, resp, err
	}

	return o.handleIdleText(ctx, state, turn)
}

func (o *Orchestrator) handleQuickReply(ctx context.Context, state Context, turn Turn) (Context, Response, error) {
	lang := state.lang()
	qr := turn.QuickReply

	switch qr.Action {
	case ActionAnswer:
		turn.Message = qr.Data
		turn.QuickReply = nil
		return o.HandleTurn(ctx, state, turn)

	case ActionSkip:
		if state.Mode == ModeReport {
			return o.continueReport(state, dialogue.SkipSignal)
		}

	case ActionComplete:
		if state.Mode == ModeReport {
			return o.continueReport(state, dialogue.CompleteSignal)
		}

	case ActionCreateReport:
		if qr.Data == "" {
			return state.reset(), Response{
				Text:         whichCategoryMessage(lang),
				QuickReplies: categoryQuickReplies(lang),
			}, nil
		}
		return o.startReport(lostfound.ReportType(qr.Data), lang)

	case ActionSearch:
		next := state.reset()
		next.Mode = ModeSearch
		next.Search = &SearchContext{}
		return next, Response{Text: searchPromptMessage(lang)}, nil

	case ActionCheckStatus:
		return o.checkStatus(ctx, state, turn.UserID)
	}

	// Unknown or out-of-place action: recover with the main menu.
	next := state.reset()
	return next, withMenu(restartMessage(lang), lang), nil
}

func (o *Orchestrator) handleIdleText(ctx context.Context, state Context, turn Turn) (Context, Response, error) {
	lang := state.Language

	if gazetteer.IsGreeting(turn.Message) {
		return state, withMenu(greetingMessage(lang), lang), nil
	}

	result := intent.Classify(turn.Message, lang)

	var next Context
	var resp Response
	var err error
	switch result.Intent {
	case intent.CreateReport:
		if result.Entities.ReportType != "" {
			next, resp, err = o.startReport(result.Entities.ReportType, lang)
		} else {
			next, resp = state, Response{
				Text:         whichCategoryMessage(lang),
				QuickReplies: categoryQuickReplies(lang),
			}
		}

	case intent.SearchReports:
		next, resp, err = o.runSearch(ctx, state, turn.Message, search.ParseQuery(turn.Message))

	case intent.CheckStatus:
		next, resp, err = o.checkStatus(ctx, state, turn.UserID)

	default:
		next, resp = state, withMenu(helpMessage(lang), lang)
	}

	resp.Intent = string(result.Intent)
	resp.Confidence = result.Confidence
	return next, resp, err
}

func (o *Orchestrator) startReport(reportType lostfound.ReportType, lang language.Language) (Context, Response, error) {
	session, step, err := dialogue.InitSession(reportType, lang)
	if err != nil {
		// Unknown category, e.g. stale quick-reply data. Ask again.
		return Context{Language: lang}, Response{
			Text:         whichCategoryMessage(lang),
			QuickReplies: categoryQuickReplies(lang),
		}, nil
	}

	next := Context{Mode: ModeReport, Language: lang, Report: &session}
	return next, stepResponse(step, lang), nil
}

func (o *Orchestrator) continueReport(state Context, answer string) (Context, Response, error) {
	lang := state.Report.Language

	session, step, err := dialogue.ProcessAnswer(*state.Report, answer)
	if err != nil {
		next := state.reset()
		return next, withMenu(restartMessage(lang), lang), nil
	}

	if step.Completed {
		next := state.reset()
		resp := Response{
			Text:     reportSavedMessage(lang) + "\n\n" + step.Summary,
			Progress: step.Progress,
			Action: &ClientAction{
				Type:   "navigate_with_data",
				Route:  "/report/new",
				Params: draftParams(session),
			},
		}
		return next, resp, nil
	}

	state.Report = &session
	return state, stepResponse(step, lang), nil
}

func (o *Orchestrator) runSearch(ctx context.Context, state Context, query string, params lostfound.SearchParams) (Context, Response, error) {
	lang := state.Language

	reports, total, err := o.store.Search(ctx, params)
	if err != nil {
		// The context is untouched: the same message can be retried.
		return state, Response{Text: tryAgainMessage(lang)}, nil
	}

	ranked := search.Rank(reports, params)
	text := search.FormatResults(ranked, int(total), lang)
	if len(ranked) > 0 {
		text += "\n\n" + searchRefineMessage(lang)
	}

	next := state.reset()
	next.Mode = ModeSearch
	next.Search = &SearchContext{
		LastQuery:   query,
		LastParams:  params,
		ResultCount: int(total),
	}
	return next, Response{Text: text}, nil
}

func (o *Orchestrator) checkStatus(ctx context.Context, state Context, userID *uuid.UUID) (Context, Response, error) {
	lang := state.lang()
	next := state.reset()

	if userID == nil {
		return next, withMenu(loginRequiredMessage(lang), lang), nil
	}

	reports, err := o.store.ListByUser(ctx, *userID)
	if err != nil {
		return state, Response{Text: tryAgainMessage(lang)}, nil
	}
	if len(reports) == 0 {
		return next, withMenu(noReportsMessage(lang), lang), nil
	}

	return next, Response{
		Text: statusText(reports, lang),
		Action: &ClientAction{
			Type:  "navigate",
			Route: "/reports/mine",
		},
	}, nil
}

// stepResponse converts a dialogue step into a reply, translating the
// engine's raw quick-reply strings into tappable actions.
func stepResponse(step dialogue.StepResult, lang language.Language) Response {
	text := step.Prompt
	if step.Invalid && step.Hint != "" {
		text = step.Hint + "\n" + step.Prompt
	}

	var quickReplies []QuickReply
	for _, qr := range step.QuickReplies {
		switch qr {
		case dialogue.SkipSignal:
			quickReplies = append(quickReplies, QuickReply{Text: skipLabel(lang), Action: ActionSkip})
		case dialogue.CompleteSignal:
			quickReplies = append(quickReplies, QuickReply{Text: doneLabel(lang), Action: ActionComplete})
		default:
			quickReplies = append(quickReplies, QuickReply{Text: qr, Action: ActionAnswer, Data: qr})
		}
	}

	return Response{
		Text:         text,
		QuickReplies: quickReplies,
		Progress:     step.Progress,
	}
}

// draftParams flattens the finished session into the navigation
// payload the client pre-fills the report form with.
func draftParams(session dialogue.Session) map[string]string {
	params := make(map[string]string, len(session.Collected)+1)
	for k, v := range session.Collected {
		params[k] = v
	}
	params["reportType"] = string(session.ReportType)
	return params
}

func statusText(reports []lostfound.Report, lang language.Language) string {
	header := map[language.Language]string{
		language.English: "Here are your reports:",
		language.Arabic:  "هذه بلاغاتك:",
		language.Darija:  "hado homa lblaghat dyalek:",
	}
	text := header[language.English]
	if h, ok := header[lang]; ok {
		text = h
	}
	for _, r := range reports {
		text += "\n- " + r.Title + " (" + r.Status + ")"
	}
	return text
}

func withMenu(text string, lang language.Language) Response {
	return Response{Text: text, QuickReplies: menuQuickReplies(lang)}
}

// lang returns the conversation language, defaulting to English for a
// fresh context.
func (c Context) lang() language.Language {
	if c.Language == "" {
		return language.English
	}
	return c.Language
}
