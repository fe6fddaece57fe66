package feed

import (
	"errors"
	"testing"
	"time"
)

func TestValidPeriod(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", DefaultPeriod, false},
		{"3mo", "3mo", false},
		{" 1Y ", "1y", false},
		{"max", "max", false},
		{"2w", "", true},
		{"10y", "", true},
	}
	for _, c := range cases {
		got, err := ValidPeriod(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("ValidPeriod(%q) err = %v, want ErrInvalidPeriod", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("ValidPeriod(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 9, 15, 18, 30, 0, 0, time.UTC)
	cases := map[string]time.Time{
		"1d":  time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC),
		"5d":  time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		"3mo": time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		"2y":  time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC),
		"max": time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		// unknown periods fall back to the default window
		"bogus": time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	for period, want := range cases {
		if got := PeriodStart(period, now); !got.Equal(want) {
			t.Fatalf("PeriodStart(%q) = %s, want %s", period, got, want)
		}
	}
}

func TestNormalizeTicker(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"petr4", "PETR4", false},
		{" VALE3.SA ", "VALE3", false},
		{"bova11", "BOVA11", false},
		{"", "", true},
		{"PE", "", true},
		{"PETR4;DROP", "", true},
		{"../etc", "", true},
	}
	for _, c := range cases {
		got, err := NormalizeTicker(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidTicker) {
				t.Fatalf("NormalizeTicker(%q) err = %v, want ErrInvalidTicker", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("NormalizeTicker(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}
}
