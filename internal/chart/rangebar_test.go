package chart

import (
	"testing"
)

func TestRangeBars_CompletesExactlyAtRange(t *testing.T) {
	series := ohlc(
		[4]string{"10", "10.5", "9.8", "10.2"},
		[4]string{"10.2", "11", "10", "10.8"},
		[4]string{"10.8", "11.8", "10.6", "11.5"}, // span reaches exactly 2.0 here
		[4]string{"11.5", "12", "11.4", "11.8"},   // partial, dropped
	)

	bars, err := RangeBars(series, d("2"))
	if err != nil {
		t.Fatalf("range bars: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("want 1 completed bar got %d: %+v", len(bars), bars)
	}

	b := bars[0]
	if b.Index != 2 {
		t.Fatalf("want bar completed at index 2, got %d", b.Index)
	}
	assertPrice(t, "open", b.Open, "10")
	assertPrice(t, "high", b.High, "11.8")
	assertPrice(t, "low", b.Low, "9.8")
	assertPrice(t, "close", b.Close, "11.5")
}

func TestRangeBars_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		rows      [][4]string
		size      string
		wantIdx   []int
		wantOpens []string
	}{
		{
			name: "wide bars complete on their own",
			rows: [][4]string{
				{"10", "13", "10", "12"},
				{"12", "12.5", "9", "9.5"},
			},
			size:      "2",
			wantIdx:   []int{0, 1},
			wantOpens: []string{"10", "12"},
		},
		{
			name: "new working bar starts from the next input bar",
			rows: [][4]string{
				{"10", "10.4", "10", "10.3"},
				{"10.3", "12.1", "10.2", "12"},
				{"12", "12.2", "11.9", "12.1"},
				{"12.1", "12.3", "10.2", "10.4"},
			},
			size:      "2",
			wantIdx:   []int{1, 3},
			wantOpens: []string{"10", "12"},
		},
		{
			name: "never reaches the range",
			rows: [][4]string{
				{"10", "10.5", "9.9", "10.1"},
				{"10.1", "10.6", "10", "10.4"},
				{"10.4", "11.2", "10.3", "11"},
			},
			size: "2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RangeBars(ohlc(tc.rows...), d(tc.size))
			if err != nil {
				t.Fatalf("range bars: %v", err)
			}
			if len(got) != len(tc.wantIdx) {
				t.Fatalf("want %d bars got %d: %+v", len(tc.wantIdx), len(got), got)
			}
			for i := range tc.wantIdx {
				if got[i].Index != tc.wantIdx[i] {
					t.Fatalf("bar %d: want index %d got %d", i, tc.wantIdx[i], got[i].Index)
				}
				assertPrice(t, "open", got[i].Open, tc.wantOpens[i])
			}
		})
	}
}
