package quality

import (
	"errors"
	"testing"
)

func TestMapSeverity(t *testing.T) {
	tests := []struct {
		impact    string
		wantLabel string
		wantToken string
	}{
		{ImpactHigh, "High impact", TokenRed},
		{ImpactMedium, "Medium impact", TokenYellow},
		{ImpactLow, "Low impact", TokenGreen},
	}

	for _, tt := range tests {
		t.Run(tt.impact, func(t *testing.T) {
			got, err := MapSeverity(tt.impact)
			if err != nil {
				t.Fatalf("MapSeverity(%q) returned error: %v", tt.impact, err)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("MapSeverity(%q).Label = %q, want %q", tt.impact, got.Label, tt.wantLabel)
			}
			if got.Token != tt.wantToken {
				t.Errorf("MapSeverity(%q).Token = %q, want %q", tt.impact, got.Token, tt.wantToken)
			}
		})
	}
}

func TestMapSeverityUnknown(t *testing.T) {
	for _, impact := range []string{"", "critical", "HIGH", "severe"} {
		got, err := MapSeverity(impact)
		if err == nil {
			t.Fatalf("MapSeverity(%q) expected error, got nil", impact)
		}
		var unknownErr *UnknownImpactError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("MapSeverity(%q) error type = %T, want *UnknownImpactError", impact, err)
		}
		if unknownErr.Impact != impact {
			t.Errorf("UnknownImpactError.Impact = %q, want %q", unknownErr.Impact, impact)
		}
		// Fallback severity must still be renderable.
		if got.Token != TokenNeutral {
			t.Errorf("MapSeverity(%q) fallback token = %q, want %q", impact, got.Token, TokenNeutral)
		}
		if got.Label == "" {
			t.Errorf("MapSeverity(%q) fallback label is empty", impact)
		}
	}
}

// Tier and severity styling share one token vocabulary: a Good tier and a
// low-impact issue both land in the green family.
func TestTokenConsistency(t *testing.T) {
	low, _ := MapSeverity(ImpactLow)
	if got := Classify(0.88).Token; got != low.Token {
		t.Errorf("Good tier token %q != low impact token %q", got, low.Token)
	}
	high, _ := MapSeverity(ImpactHigh)
	if got := Classify(0.3).Token; got != high.Token {
		t.Errorf("Poor tier token %q != high impact token %q", got, high.Token)
	}
	medium, _ := MapSeverity(ImpactMedium)
	if got := Classify(0.6).Token; got != medium.Token {
		t.Errorf("Fair tier token %q != medium impact token %q", got, medium.Token)
	}
}
