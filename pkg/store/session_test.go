package store

import (
	"testing"
	"time"
)

func TestBestURL(t *testing.T) {
	tests := []struct {
		name string
		ref  *VisualReference
		want string
	}{
		{name: "nil reference", ref: nil, want: ""},
		{name: "hidpi preferred", ref: &VisualReference{ImageURL: "n", HiDPIURL: "h"}, want: "h"},
		{name: "normal fallback", ref: &VisualReference{ImageURL: "n"}, want: "n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.BestURL(); got != tt.want {
				t.Errorf("BestURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendTurnPreservesOrder(t *testing.T) {
	s := &Session{}
	at := time.Now()

	first := s.AppendTurn("user", "hello", at)
	second := s.AppendTurn("assistant", "hi", at)

	if len(s.Turns) != 2 {
		t.Fatalf("len(Turns) = %d, want 2", len(s.Turns))
	}
	if s.Turns[0] != first || s.Turns[1] != second {
		t.Error("turns out of insertion order")
	}
	if first.Id == second.Id {
		t.Error("turn ids must be unique")
	}
}
