package chart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestATRBrickSize(t *testing.T) {
	// Constant close with a 2.00 high-low span: every true range is 2.
	flatRange := make([][4]string, 20)
	for i := range flatRange {
		flatRange[i] = [4]string{"10", "11", "9", "10"}
	}

	cases := []struct {
		name    string
		rows    [][4]string
		period  int
		want    string
		wantErr error
	}{
		{name: "constant true range", rows: flatRange, period: 14, want: "2"},
		{name: "too short", rows: flatRange[:10], period: 14, wantErr: ErrInsufficientData},
		{name: "bad period", rows: flatRange, period: 0, wantErr: ErrInvalidParameter},
		{name: "no volatility", rows: func() [][4]string {
			rows := make([][4]string, 16)
			for i := range rows {
				rows[i] = [4]string{"10", "10", "10", "10"}
			}
			return rows
		}(), period: 14, wantErr: ErrInsufficientData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ATRBrickSize(ohlc(tc.rows...), tc.period)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v got %v", tc.wantErr, err)
				}
				if !got.Equal(decimal.Zero) {
					t.Fatalf("want zero size on error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			assertPrice(t, "brick size", got, tc.want)
		})
	}
}
