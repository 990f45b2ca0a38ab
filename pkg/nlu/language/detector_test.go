package language

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"plain english", "I lost my phone yesterday", English},
		{"arabic script", "ضاع مني هاتفي في الرباط", Arabic},
		{"arabic greeting", "مرحبا", Arabic},
		{"mixed script leans arabic", "lost هاتف", Arabic},
		{"darija strong token", "wach chefti kelb sghir", Darija},
		{"darija chat alphabet", "tleft telephone dyali f casa", Darija},
		{"darija with digits", "l9it wahed l portable", Darija},
		{"single strong token wins", "bghit ndir rapport", Darija},
		{"english with one weak token stays english", "the final salam of the letter was short and formal", English},
		{"empty input", "", English},
		{"punctuation only", "?!...", English},
		{"numbers only", "12345", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectIdempotent(t *testing.T) {
	inputs := []string{"salam khouya", "hello there", "أين حقيبتي", "", "chno hada"}
	for _, in := range inputs {
		first := Detect(in)
		for i := 0; i < 3; i++ {
			if got := Detect(in); got != first {
				t.Fatalf("Detect(%q) unstable: %q then %q", in, first, got)
			}
		}
	}
}

func TestTokenizeKeepsDigits(t *testing.T) {
	tokens := Tokenize("l9it 3afak, merci!")
	want := []string{"l9it", "3afak", "merci"}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize returned %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}
