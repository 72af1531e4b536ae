package money

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	if got := Round(942.5480769); got != 942.55 {
		t.Fatalf("expected 942.55, got %v", got)
	}
	if got := Round(-12.345); got != -12.35 {
		t.Fatalf("expected -12.35, got %v", got)
	}
	if got := Round(math.NaN()); got != 0 {
		t.Fatalf("NaN should round to 0, got %v", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(1442.3076923); got != "1442.31" {
		t.Fatalf("expected 1442.31, got %s", got)
	}
	if got := Format(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
	if got := Format(math.Inf(1)); got != "0.00" {
		t.Fatalf("Inf should format as 0.00, got %s", got)
	}
}
