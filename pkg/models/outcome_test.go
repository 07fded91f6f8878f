package models

import "testing"

func TestOutcome_Valid(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    bool
	}{
		{"less is valid", OutcomeLess, true},
		{"greater is valid", OutcomeGreater, true},
		{"equal is valid", OutcomeEqual, true},
		{"invalid is valid", OutcomeInvalid, true},
		{"empty string is invalid", Outcome(""), false},
		{"unknown outcome is invalid", Outcome("bigger"), false},
		{"uppercase is invalid", Outcome("LESS"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Valid(); got != tt.want {
				t.Errorf("Outcome(%q).Valid() = %v, want %v", tt.outcome, got, tt.want)
			}
		})
	}
}

func TestOutcome_Feedback(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeLess, "Too small!"},
		{OutcomeGreater, "Too big!"},
		{OutcomeEqual, "You win!"},
		{OutcomeInvalid, ""},
		{Outcome("unknown"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			if got := tt.outcome.Feedback(); got != tt.want {
				t.Errorf("Outcome(%q).Feedback() = %q, want %q", tt.outcome, got, tt.want)
			}
		})
	}
}
