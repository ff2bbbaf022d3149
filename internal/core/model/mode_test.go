package model

import (
	"testing"
	"time"
)

func TestModeDuration(t *testing.T) {
	tests := []struct {
		mode Mode
		want time.Duration
	}{
		{ModeWork, 1500 * time.Second},
		{ModeBreak, 300 * time.Second},
		{Mode("nap"), 0},
	}
	for _, test := range tests {
		if got := test.mode.Duration(); got != test.want {
			t.Fatalf("%q.Duration() = %v, want %v", test.mode, got, test.want)
		}
	}
}

func TestModeNext(t *testing.T) {
	if got := ModeWork.Next(); got != ModeBreak {
		t.Fatalf("ModeWork.Next() = %q, want %q", got, ModeBreak)
	}
	if got := ModeBreak.Next(); got != ModeWork {
		t.Fatalf("ModeBreak.Next() = %q, want %q", got, ModeWork)
	}
}

func TestModeValid(t *testing.T) {
	if !ModeWork.Valid() || !ModeBreak.Valid() {
		t.Fatal("known modes must be valid")
	}
	if Mode("").Valid() {
		t.Fatal("empty mode must not be valid")
	}
}
