package main

import (
	"context"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/pkg/assistant"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// memoryStore is an offline stand-in for the database-backed report
// store, so the whole conversation flow can be exercised without infra.
type memoryStore struct {
	reports []lostfound.Report
}

func (s *memoryStore) Search(_ context.Context, params lostfound.SearchParams) ([]lostfound.Report, int64, error) {
	var out []lostfound.Report
	for _, r := range s.reports {
		if params.Type != "" && r.Type != params.Type {
			continue
		}
		if params.City != "" && r.City != params.City {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (s *memoryStore) ListByUser(_ context.Context, _ uuid.UUID) ([]lostfound.Report, error) {
	return s.reports, nil
}

func main() {
	color.Cyan("🤖 Assistant Conversation Simulation\n")

	store := &memoryStore{
		reports: []lostfound.Report{
			{
				ID:          uuid.New(),
				Type:        lostfound.TypePet,
				Title:       "Golden retriever near the beach",
				Description: "Friendly golden retriever, red collar, answers to Rex",
				City:        "casablanca",
				Status:      "open",
				CreatedAt:   time.Now().Add(-24 * time.Hour),
			},
			{
				ID:          uuid.New(),
				Type:        lostfound.TypeElectronics,
				Title:       "Black Samsung phone",
				Description: "Samsung Galaxy, cracked screen, found at the tram station",
				City:        "rabat",
				Status:      "open",
				CreatedAt:   time.Now().Add(-2 * time.Hour),
			},
		},
	}

	orch := assistant.NewOrchestrator(store)
	ctx := context.Background()
	state := assistant.Context{}

	script := []string{
		"hello",
		"has anyone seen a dog in casablanca?",
		"I lost my cat in Fes",
		"Minouche",
		"cat",
		"siamese",
		"small",
		"white",
		"fes",
		"near the medina",
		"cancel",
	}

	for _, msg := range script {
		color.Yellow("USER: %s", msg)

		next, resp, err := orch.HandleTurn(ctx, state, assistant.Turn{Message: msg})
		if err != nil {
			color.Red("error: %v", err)
			return
		}
		state = next

		color.Green("BOT:  %s", resp.Text)
		if resp.Progress != "" {
			color.White("      progress: %s", resp.Progress)
		}
		for _, qr := range resp.QuickReplies {
			color.White("      [%s]", qr.Text)
		}
		if resp.Action != nil {
			color.Magenta("      action: %s -> %s", resp.Action.Type, resp.Action.Route)
		}
	}

	color.Cyan("\nDone.")
}
