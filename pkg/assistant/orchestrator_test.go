package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

type fakeStore struct {
	reports    []lostfound.Report
	searchErr  error
	listErr    error
	lastParams lostfound.SearchParams
}

func (f *fakeStore) Search(_ context.Context, params lostfound.SearchParams) ([]lostfound.Report, int64, error) {
	f.lastParams = params
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.reports, int64(len(f.reports)), nil
}

func (f *fakeStore) ListByUser(_ context.Context, _ uuid.UUID) ([]lostfound.Report, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reports, nil
}

func textTurn(message string) Turn {
	return Turn{Message: message}
}

func TestGreetingArabic(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	state, resp, err := o.HandleTurn(context.Background(), Context{}, textTurn("مرحبا"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if state.Mode != ModeIdle {
		t.Errorf("Mode = %q, want idle", state.Mode)
	}
	if state.Language != language.Arabic {
		t.Errorf("Language = %q, want ar", state.Language)
	}
	if !strings.Contains(resp.Text, "مرحبا") {
		t.Errorf("greeting not in Arabic: %q", resp.Text)
	}
	if len(resp.QuickReplies) == 0 {
		t.Error("greeting carries no menu")
	}
}

func TestCreateIntentWithoutCategoryAsks(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	_, resp, err := o.HandleTurn(context.Background(), Context{}, textTurn("I want to report something I lost"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if len(resp.QuickReplies) != len(lostfound.AllTypes()) {
		t.Fatalf("quick replies = %d, want one per category", len(resp.QuickReplies))
	}
	for _, qr := range resp.QuickReplies {
		if qr.Action != ActionCreateReport {
			t.Errorf("quick reply action = %q, want %q", qr.Action, ActionCreateReport)
		}
	}
}

func TestCreateIntentWithCategoryStartsDialogue(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	state, resp, err := o.HandleTurn(context.Background(), Context{}, textTurn("I lost my dog in casablanca"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if state.Mode != ModeReport {
		t.Fatalf("Mode = %q, want report", state.Mode)
	}
	if state.Report.ReportType != lostfound.TypePet {
		t.Errorf("ReportType = %q, want pet", state.Report.ReportType)
	}
	if resp.Text == "" || resp.Progress == "" {
		t.Errorf("first slot reply incomplete: %+v", resp)
	}
}

func TestQuickReplyStartsPetReport(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	state, resp, err := o.HandleTurn(context.Background(), Context{}, Turn{
		QuickReply: &QuickReplyInput{Action: ActionCreateReport, Data: "pet"},
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if state.Mode != ModeReport {
		t.Fatalf("Mode = %q, want report", state.Mode)
	}
	if !strings.Contains(resp.Text, "pet's name") {
		t.Errorf("first prompt = %q, want pet name question", resp.Text)
	}
}

func TestCancellationInterruptsReportAnyLanguage(t *testing.T) {
	phrases := []string{"cancel", "cancel this", "ok stop please", "never mind", "wa9ef", "إلغاء", "bghit nwa9ef"}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			o := NewOrchestrator(&fakeStore{})
			ctx := context.Background()

			state, _, _ := o.HandleTurn(ctx, Context{}, Turn{
				QuickReply: &QuickReplyInput{Action: ActionCreateReport, Data: "person"},
			})
			state, _, _ = o.HandleTurn(ctx, state, textTurn("Amine"))
			state, _, _ = o.HandleTurn(ctx, state, textTurn("Benali"))
			if state.Mode != ModeReport {
				t.Fatalf("setup: Mode = %q, want report", state.Mode)
			}

			next, resp, err := o.HandleTurn(ctx, state, textTurn(phrase))
			if err != nil {
				t.Fatalf("HandleTurn: %v", err)
			}
			if next.Mode != ModeIdle {
				t.Errorf("Mode = %q, want idle after cancellation", next.Mode)
			}
			if next.Report != nil {
				t.Error("report session survived cancellation")
			}
			if resp.Text == "" || len(resp.QuickReplies) == 0 {
				t.Errorf("cancellation reply incomplete: %+v", resp)
			}
		})
	}
}

func TestReportCompletionEmitsNavigation(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})
	ctx := context.Background()

	state, resp, _ := o.HandleTurn(ctx, Context{}, Turn{
		QuickReply: &QuickReplyInput{Action: ActionCreateReport, Data: "other"},
	})
	state, resp, _ = o.HandleTurn(ctx, state, textTurn("blue umbrella")) // itemName
	state, resp, _ = o.HandleTurn(ctx, state, Turn{QuickReply: &QuickReplyInput{Action: ActionSkip}})
	state, resp, _ = o.HandleTurn(ctx, state, textTurn("rabat")) // city
	state, resp, _ = o.HandleTurn(ctx, state, Turn{QuickReply: &QuickReplyInput{Action: ActionComplete}})

	if state.Mode != ModeIdle {
		t.Errorf("Mode = %q, want idle after completion", state.Mode)
	}
	if resp.Action == nil {
		t.Fatal("completion carries no client action")
	}
	if resp.Action.Type != "navigate_with_data" {
		t.Errorf("action type = %q", resp.Action.Type)
	}
	if resp.Action.Params["reportType"] != "other" {
		t.Errorf("reportType param = %q", resp.Action.Params["reportType"])
	}
	if resp.Action.Params["itemName"] != "blue umbrella" {
		t.Errorf("itemName param = %q", resp.Action.Params["itemName"])
	}
}

func TestSearchFlowAndRefinement(t *testing.T) {
	store := &fakeStore{reports: []lostfound.Report{
		{ID: uuid.New(), Type: lostfound.TypePet, Title: "Golden retriever", City: "casablanca", Status: "open", CreatedAt: time.Now()},
	}}
	o := NewOrchestrator(store)
	ctx := context.Background()

	state, resp, err := o.HandleTurn(ctx, Context{}, textTurn("has anyone seen a dog in casablanca"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if state.Mode != ModeSearch {
		t.Fatalf("Mode = %q, want search", state.Mode)
	}
	if store.lastParams.Type != lostfound.TypePet || store.lastParams.City != "casablanca" {
		t.Errorf("params = %+v", store.lastParams)
	}
	if !strings.Contains(resp.Text, "Golden retriever") {
		t.Errorf("result card missing: %q", resp.Text)
	}

	// Follow-up keeps the city and category, adds a keyword.
	state, _, err = o.HandleTurn(ctx, state, textTurn("a golden one"))
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if store.lastParams.City != "casablanca" {
		t.Errorf("refined city = %q, want carried over", store.lastParams.City)
	}
	found := false
	for _, kw := range store.lastParams.Keywords {
		if kw == "golden" {
			found = true
		}
	}
	if !found {
		t.Errorf("refined keywords = %v, want golden", store.lastParams.Keywords)
	}
	if state.Mode != ModeSearch {
		t.Errorf("Mode = %q, want still search", state.Mode)
	}
}

func TestStoreFailureKeepsContext(t *testing.T) {
	o := NewOrchestrator(&fakeStore{searchErr: errors.New("db down")})

	prev := Context{Language: language.English}
	next, resp, err := o.HandleTurn(context.Background(), prev, textTurn("looking for a cat in fes"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if next.Mode != prev.Mode {
		t.Errorf("Mode changed on store failure: %q", next.Mode)
	}
	if resp.Text == "" {
		t.Error("failure reply is empty")
	}
}

func TestCorruptContextResets(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	corrupt := Context{Mode: ModeReport} // report mode without a session
	next, resp, err := o.HandleTurn(context.Background(), corrupt, textTurn("hello"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if next.Mode != ModeIdle {
		t.Errorf("Mode = %q, want idle after reset", next.Mode)
	}
	if resp.Text == "" || len(resp.QuickReplies) == 0 {
		t.Errorf("reset reply incomplete: %+v", resp)
	}
}

func TestCorruptSerializedContextResets(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})
	ctx := context.Background()

	state, _, _ := o.HandleTurn(ctx, Context{}, Turn{
		QuickReply: &QuickReplyInput{Action: ActionCreateReport, Data: "pet"},
	})

	// Simulate a client mangling the persisted context.
	data, _ := json.Marshal(state)
	data = []byte(strings.Replace(string(data), `"pet"`, `"ghost"`, 1))
	var mangled Context
	if err := json.Unmarshal(data, &mangled); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	next, _, err := o.HandleTurn(ctx, mangled, textTurn("Rex"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if next.Mode != ModeIdle {
		t.Errorf("Mode = %q, want idle after corrupt context", next.Mode)
	}
}

func TestStatusRequiresLogin(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	_, resp, err := o.HandleTurn(context.Background(), Context{}, textTurn("show me my reports"))
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !strings.Contains(resp.Text, "signed in") {
		t.Errorf("reply = %q, want login required", resp.Text)
	}
}

func TestStatusListsOwnReports(t *testing.T) {
	store := &fakeStore{reports: []lostfound.Report{
		{ID: uuid.New(), Title: "Lost passport", Status: "open", CreatedAt: time.Now()},
	}}
	o := NewOrchestrator(store)
	userID := uuid.New()

	_, resp, err := o.HandleTurn(context.Background(), Context{}, Turn{
		Message: "show me my reports",
		UserID:  &userID,
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !strings.Contains(resp.Text, "Lost passport") {
		t.Errorf("reply = %q, want report listed", resp.Text)
	}
	if resp.Action == nil || resp.Action.Route != "/reports/mine" {
		t.Errorf("action = %+v, want navigate to /reports/mine", resp.Action)
	}
}

func TestClassifiedTurnsCarryIntent(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})
	ctx := context.Background()

	cases := []struct {
		message string
		intent  string
	}{
		{"I lost my dog in casablanca", "create_report"},
		{"has anyone seen a cat in fes", "search_reports"},
		{"show me my reports", "check_status"},
		{"what is this platform", "platform_help"},
	}
	for _, tc := range cases {
		_, resp, err := o.HandleTurn(ctx, Context{}, textTurn(tc.message))
		if err != nil {
			t.Fatalf("%q: %v", tc.message, err)
		}
		if resp.Intent != tc.intent {
			t.Errorf("%q: intent = %q, want %q", tc.message, resp.Intent, tc.intent)
		}
		if resp.Confidence <= 0 {
			t.Errorf("%q: confidence = %v, want > 0", tc.message, resp.Confidence)
		}
	}

	// A search refinement is still a search turn.
	state, _, _ := o.HandleTurn(ctx, Context{}, textTurn("has anyone seen a cat in fes"))
	_, resp, err := o.HandleTurn(ctx, state, textTurn("a black one"))
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if resp.Intent != "search_reports" {
		t.Errorf("refinement intent = %q, want search_reports", resp.Intent)
	}
}

func TestUnknownQuickReplyActionRecovers(t *testing.T) {
	o := NewOrchestrator(&fakeStore{})

	next, resp, err := o.HandleTurn(context.Background(), Context{}, Turn{
		QuickReply: &QuickReplyInput{Action: "fly_to_the_moon"},
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if next.Mode != ModeIdle {
		t.Errorf("Mode = %q, want idle", next.Mode)
	}
	if resp.Text == "" {
		t.Error("recovery reply is empty")
	}
}
