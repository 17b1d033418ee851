package timefmt

import (
	"fmt"
	"testing"
	"time"
)

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"01:05", "1:05 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:00", "1:00 PM"},
		{"14:30", "2:30 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		if err != nil {
			t.Fatalf("To12Hour(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTo12Hour_Invalid(t *testing.T) {
	for _, in := range []string{"", "25:00", "12:60", "nonsense", "12"} {
		if _, err := To12Hour(in); err == nil {
			t.Errorf("To12Hour(%q) expected error", in)
		}
	}
}

func TestRoundTrip_AllMinutes(t *testing.T) {
	// Display conversion must be idempotent over the full day.
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			hhmm := fmt.Sprintf("%02d:%02d", hour, minute)

			display, err := To12Hour(hhmm)
			if err != nil {
				t.Fatalf("To12Hour(%q) error: %v", hhmm, err)
			}

			back, err := To24Hour(display)
			if err != nil {
				t.Fatalf("To24Hour(%q) error: %v", display, err)
			}
			if back != hhmm {
				t.Fatalf("round trip %q -> %q -> %q", hhmm, display, back)
			}

			again, err := To12Hour(back)
			if err != nil {
				t.Fatalf("To12Hour(%q) error: %v", back, err)
			}
			if again != display {
				t.Fatalf("display not idempotent: %q vs %q", display, again)
			}
		}
	}
}

func TestFormatDate_LocalMidnightPositiveOffset(t *testing.T) {
	// A local midnight in a positive-offset zone serialized through UTC would
	// land on the previous day. FormatDate must keep the clicked date.
	loc := time.FixedZone("UTC+5:30", 5*3600+30*60)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	if got := FormatDate(date); got != "2026-03-09" {
		t.Fatalf("FormatDate = %q, want %q", got, "2026-03-09")
	}

	// The UTC rendering of the same instant is the prior day; make sure the
	// two genuinely differ so the regression stays meaningful.
	if utc := date.UTC().Format(DateLayout); utc == "2026-03-09" {
		t.Fatalf("expected UTC date to differ, got %q", utc)
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+30*60)

	date, err := ParseDate("2026-03-09", loc)
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if date.Hour() != 0 || date.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", date)
	}
	if date.Location() != loc {
		t.Fatalf("expected location %v, got %v", loc, date.Location())
	}

	if _, err := ParseDate("09-03-2026", loc); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestCombineDateTime(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+30*60)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	combined, err := CombineDateTime(date, "2:30 PM")
	if err != nil {
		t.Fatalf("CombineDateTime error: %v", err)
	}

	want := time.Date(2026, 3, 9, 14, 30, 0, 0, loc)
	if !combined.Equal(want) {
		t.Fatalf("CombineDateTime = %v, want %v", combined, want)
	}

	if _, err := CombineDateTime(date, "14:30"); err == nil {
		t.Fatal("expected error for 24-hour input")
	}
}
