package util

import (
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"2024-02-31", true}, // month length deliberately unchecked
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-01-32", false},
		{"2024-01-00", false},
		{"2024/01/15", false},
		{"24-01-15", false},
		{"2024-1-15", false},
		{"2024-01-15T00", false},
		{"", false},
		{"abcd-ef-gh", false},
	}

	for _, tt := range tests {
		if got := IsValidDate(tt.in); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-03-07" {
		t.Errorf("FormatDate = %q, want 2024-03-07", got)
	}
}

func TestDayStart(t *testing.T) {
	got, err := DayStart("2024-03-07")
	if err != nil {
		t.Fatalf("DayStart returned error: %v", err)
	}
	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}

func TestDateStringsOrderLexicographically(t *testing.T) {
	// The fixed-width zero-padded layout is what makes range comparisons on
	// raw strings valid.
	if !("2024-01-31" < "2024-02-01") {
		t.Error("expected 2024-01-31 < 2024-02-01")
	}
	if !("2023-12-31" < "2024-01-01") {
		t.Error("expected 2023-12-31 < 2024-01-01")
	}
}
