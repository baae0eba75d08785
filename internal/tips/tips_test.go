package tips

import (
	"fmt"
	"testing"
	"time"
)

func dayOfYear(t *testing.T, yday int) time.Time {
	t.Helper()
	// 2025 is not a leap year; Jan 1 + (yday-1) days.
	return time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, yday-1)
}

func catalogOf(t *testing.T, n int) *Catalog {
	t.Helper()
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("tip-%d", i)
	}
	c, err := New(list)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}

func TestNew_EmptyCatalog(t *testing.T) {
	if _, err := New(nil); err != ErrEmptyCatalog {
		t.Fatalf("want ErrEmptyCatalog, got %v", err)
	}
}

func TestForDate_SamePositionRepeats(t *testing.T) {
	c := catalogOf(t, 6)
	// 1 mod 6 == 7 mod 6: days 1 and 7 get the same tip.
	if a, b := c.ForDate(dayOfYear(t, 1)), c.ForDate(dayOfYear(t, 7)); a != b {
		t.Fatalf("day 1 (%s) and day 7 (%s) should match", a, b)
	}
}

func TestForDate_AdjacentDaysDiffer(t *testing.T) {
	c := catalogOf(t, 6)
	if a, b := c.ForDate(dayOfYear(t, 1)), c.ForDate(dayOfYear(t, 2)); a == b {
		t.Fatalf("day 1 and day 2 should differ, both %s", a)
	}
}

func TestForDate_SingleTipCatalogIsTotal(t *testing.T) {
	c := catalogOf(t, 1)
	for yday := 1; yday <= 365; yday++ {
		if got := c.ForDate(dayOfYear(t, yday)); got != "tip-0" {
			t.Fatalf("day %d: got %s", yday, got)
		}
	}
}

func TestForDate_LocalDateDecides(t *testing.T) {
	c := catalogOf(t, 6)
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	// 23:30 UTC Dec 31 is already Jan 1 in Tokyo; the Tokyo-localized
	// time must pick Jan 1's tip.
	instant := time.Date(2025, time.December, 31, 23, 30, 0, 0, time.UTC)
	if got, want := c.ForDate(instant.In(tokyo)), c.ForDate(dayOfYear(t, 1)); got != want {
		t.Fatalf("want Jan 1 tip %s, got %s", want, got)
	}
}
