package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 12, 23, 23, 50, 0, 0, time.UTC)
	end := time.Date(2024, 12, 25, 0, 10, 0, 0, time.UTC)

	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, 12, time.UTC)

	if !start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}
}
