package models

import "testing"

func TestSessionStatus_Valid(t *testing.T) {
	tests := []struct {
		name   string
		status SessionStatus
		want   bool
	}{
		{"active is valid", SessionActive, true},
		{"won is valid", SessionWon, true},
		{"aborted is valid", SessionAborted, true},
		{"empty string is invalid", SessionStatus(""), false},
		{"typo status is invalid", SessionStatus("wonn"), false},
		{"outcome value is invalid", SessionStatus("equal"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("SessionStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTargetRange(t *testing.T) {
	if MinTarget != 1 {
		t.Errorf("expected MinTarget 1, got %d", MinTarget)
	}
	if MaxTarget != 100 {
		t.Errorf("expected MaxTarget 100, got %d", MaxTarget)
	}
}
