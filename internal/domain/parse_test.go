package domain

import (
	"errors"
	"testing"
)

func TestParseHHMM(t *testing.T) {
	cases := []struct {
		in       string
		hh, mm   int
		wantFail bool
	}{
		{"09:30", 9, 30, false},
		{"9:30", 9, 30, false},
		{" 23:59 ", 23, 59, false},
		{"0:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"-1:30", 0, 0, true},
		{"930", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tc := range cases {
		hh, mm, err := ParseHHMM(tc.in)
		if tc.wantFail {
			if !errors.Is(err, ErrInvalidTime) {
				t.Fatalf("%q: want ErrInvalidTime, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if hh != tc.hh || mm != tc.mm {
			t.Fatalf("%q: want %d:%d, got %d:%d", tc.in, tc.hh, tc.mm, hh, mm)
		}
	}
}

func TestValidateTZ(t *testing.T) {
	if tz, err := ValidateTZ("Europe/Moscow"); err != nil || tz != "Europe/Moscow" {
		t.Fatalf("want Europe/Moscow, got %q err %v", tz, err)
	}
	if _, err := ValidateTZ("Not/AZone"); !errors.Is(err, ErrInvalidTimezone) {
		t.Fatalf("want ErrInvalidTimezone, got %v", err)
	}
}

func TestFormatHHMM(t *testing.T) {
	if got := FormatHHMM(8, 5); got != "08:05" {
		t.Fatalf("want 08:05, got %s", got)
	}
}
