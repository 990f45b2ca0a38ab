package search

import (
	"reflect"
	"testing"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantType     lostfound.ReportType
		wantCity     string
		wantKeywords []string
	}{
		{
			name:     "category and city",
			query:    "missing dog in casablanca",
			wantType: lostfound.TypePet,
			wantCity: "casablanca",
		},
		{
			name:         "keywords survive",
			query:        "lost black wallet near the train station in rabat",
			wantType:     lostfound.TypeDocument,
			wantCity:     "rabat",
			wantKeywords: []string{"black", "train", "station"},
		},
		{
			name:     "city alias",
			query:    "telephone perdu casa",
			wantType: lostfound.TypeElectronics,
			wantCity: "casablanca",
		},
		{
			name:     "arabic query",
			query:    "ضاع كلب في مراكش",
			wantType: lostfound.TypePet,
			wantCity: "marrakech",
		},
		{
			name:         "darija query",
			query:        "tlef lia telephone samsung f agadir",
			wantType:     lostfound.TypeElectronics,
			wantCity:     "agadir",
			wantKeywords: []string{"samsung"},
		},
		{
			name:  "empty query",
			query: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseQuery(tc.query)
			if got.Type != tc.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tc.wantType)
			}
			if got.City != tc.wantCity {
				t.Errorf("City = %q, want %q", got.City, tc.wantCity)
			}
			if tc.wantKeywords != nil && !reflect.DeepEqual(got.Keywords, tc.wantKeywords) {
				t.Errorf("Keywords = %v, want %v", got.Keywords, tc.wantKeywords)
			}
		})
	}
}

func TestParseQueryEmptyIsZero(t *testing.T) {
	if !ParseQuery("").IsZero() {
		t.Fatal("empty query must parse to zero params")
	}
}

func TestRefineQuery(t *testing.T) {
	first := ParseQuery("lost dog in casablanca")
	refined := RefineQuery(first, "a golden retriever")

	if refined.Type != lostfound.TypePet {
		t.Errorf("Type = %q, want pet carried over", refined.Type)
	}
	if refined.City != "casablanca" {
		t.Errorf("City = %q, want casablanca carried over", refined.City)
	}
	if !contains(refined.Keywords, "golden") || !contains(refined.Keywords, "retriever") {
		t.Errorf("Keywords = %v, want golden and retriever added", refined.Keywords)
	}
}

func TestRefineQueryOverridesCity(t *testing.T) {
	first := ParseQuery("lost dog in casablanca")
	refined := RefineQuery(first, "actually in rabat")
	if refined.City != "rabat" {
		t.Errorf("City = %q, want rabat (follow-up wins)", refined.City)
	}
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
