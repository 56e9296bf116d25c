package timezone_test

import (
	"testing"
	"time"

	"lodge/shared/timezone"
)

func TestNowAndLocation(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	parsed, err := time.Parse("2006-01-02", today)
	if err != nil {
		t.Errorf("Today() returned %q, not a YYYY-MM-DD date: %v", today, err)
	}

	if parsed.IsZero() {
		t.Error("Today() parsed to a zero time")
	}
}

func TestDateOf(t *testing.T) {
	stamp := time.Date(2025, 7, 17, 23, 30, 0, 0, timezone.GetLocation())

	if got := timezone.DateOf(stamp); got != "2025-07-17" {
		t.Errorf("DateOf() = %q, want 2025-07-17", got)
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}

	if formatted := timezone.Format(parsed, "2006-01-02"); formatted != "2024-01-01" {
		t.Errorf("Format() = %q, want 2024-01-01", formatted)
	}
}
